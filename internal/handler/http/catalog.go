package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/journal-directory/models"
)

func (h *Handler) searchCatalog(w http.ResponseWriter, r *http.Request) {
	criteria := models.CatalogCriteria{
		Term: r.URL.Query().Get("term"),
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			writeError(w, r, errInvalidRequestBody)
			return
		}
		criteria.Limit = limit
	}

	entries, err := h.services.CatalogService.SearchCatalog(r.Context(), criteria)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.CatalogResponse{
		Entries: entries,
		Length:  len(entries),
	})
}
