package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/journal-directory/internal/adapter"
	"github.com/MKhiriev/journal-directory/internal/service"
	"github.com/MKhiriev/journal-directory/internal/store"
)

var errorStatusMap = map[error]int{
	errInvalidRequestBody: http.StatusBadRequest,
	errRouteNotFound:      http.StatusNotFound,
	errMethodNotAllowed:   http.StatusMethodNotAllowed,

	// the per-request timeout middleware cancels the request context
	context.DeadlineExceeded: http.StatusGatewayTimeout,

	service.ErrNoSearchTerm:         http.StatusBadRequest,
	service.ErrNoSpecialty:          http.StatusBadRequest,
	service.ErrInvalidISSN:          http.StatusBadRequest,
	service.ErrNoCatalogTerm:        http.StatusBadRequest,
	service.ErrServiceNotReady:      http.StatusServiceUnavailable,
	service.ErrInitializationFailed: http.StatusServiceUnavailable,

	adapter.ErrCatalogBadRequest:        http.StatusBadRequest,
	adapter.ErrCatalogUnavailable:       http.StatusBadGateway,
	adapter.ErrCatalogRequestFailed:     http.StatusBadGateway,
	adapter.ErrCatalogMalformedResponse: http.StatusBadGateway,

	store.ErrJournalNotFound: http.StatusNotFound,
	store.ErrJournalNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
