// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by the catalog client. Callers can match
// against them with [errors.Is].
var (
	// ErrCatalogBadRequest is returned when the catalog rejects the query
	// as malformed (HTTP 400).
	ErrCatalogBadRequest = errors.New("catalog rejected the request")

	// ErrCatalogUnavailable is returned when the catalog cannot be reached
	// or reports a server-side failure (network error, HTTP 429 or 5xx).
	ErrCatalogUnavailable = errors.New("catalog is unavailable")

	// ErrCatalogRequestFailed is returned for any other non-success
	// catalog response.
	ErrCatalogRequestFailed = errors.New("catalog request failed")

	// ErrCatalogMalformedResponse is returned when a catalog response body
	// cannot be decoded into the expected shape.
	ErrCatalogMalformedResponse = errors.New("catalog returned a malformed response")
)
