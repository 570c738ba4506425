package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/models"
)

const contentTypeJSON = "application/json"

// writeJSON marshals payload into the response body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error encoding response body")
	}
}

// writeError maps err onto an HTTP status and writes the structured error
// body. The trace ID set by the trace middleware is echoed so failed
// requests can be correlated with server logs.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "writeError").Msg("request failed")
	} else {
		logger.FromRequest(r).Warn().Err(err).Str("func", "writeError").Msg("request rejected")
	}

	writeJSON(w, r, status, models.ErrorResponse{
		Error:   err.Error(),
		TraceID: w.Header().Get(traceIDHeader),
	})
}

// notFound is the router fallback for unmatched paths.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}

// methodNotAllowed is the router fallback for matched paths with an
// unsupported method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errMethodNotAllowed)
}
