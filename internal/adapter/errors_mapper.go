package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-success catalog response into one of the
// package sentinel errors, annotated with the HTTP status code.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: status %d", ErrCatalogBadRequest, status)
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrCatalogUnavailable, status)
	default:
		return fmt.Errorf("%w: status %d", ErrCatalogRequestFailed, status)
	}
}
