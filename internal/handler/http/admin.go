package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/models"
)

func (h *Handler) refreshDatabase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// the body is optional: an empty one falls back to the configured terms
	var refreshRequest models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&refreshRequest); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.refreshDatabase").Msg("invalid JSON was passed")
		writeError(w, r, errInvalidRequestBody)
		return
	}

	status, err := h.services.JournalService.RefreshDatabase(r.Context(), refreshRequest.Terms...)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, status)
}

func (h *Handler) remapSpecialties(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.JournalService.RemapSpecialties(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, status)
}
