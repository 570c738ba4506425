package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/journal-directory/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listJournals(w http.ResponseWriter, r *http.Request) {
	journals, err := h.services.JournalService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.JournalsResponse{
		Journals: journals,
		Length:   len(journals),
	})
}

func (h *Handler) searchJournals(w http.ResponseWriter, r *http.Request) {
	criteria := models.SearchCriteria{
		Term:      r.URL.Query().Get("term"),
		Specialty: r.URL.Query().Get("specialty"),
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			writeError(w, r, errInvalidRequestBody)
			return
		}
		criteria.Limit = limit
	}

	journals, err := h.services.JournalService.Search(r.Context(), criteria)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.JournalsResponse{
		Journals: journals,
		Length:   len(journals),
	})
}

func (h *Handler) journalsBySpecialty(w http.ResponseWriter, r *http.Request) {
	specialty := chi.URLParam(r, "specialty")

	journals, err := h.services.JournalService.BySpecialty(r.Context(), specialty)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.JournalsResponse{
		Journals: journals,
		Length:   len(journals),
	})
}

func (h *Handler) listSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.services.JournalService.ListSpecialties(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.SpecialtiesResponse{
		Specialties: specialties,
		Length:      len(specialties),
	})
}

func (h *Handler) filterBySpecialty(w http.ResponseWriter, r *http.Request) {
	specialty := chi.URLParam(r, "specialty")

	summaries, err := h.services.JournalService.FilterBySpecialty(r.Context(), specialty)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.SummariesResponse{
		Summaries: summaries,
		Length:    len(summaries),
	})
}

func (h *Handler) journalByISSN(w http.ResponseWriter, r *http.Request) {
	issn := chi.URLParam(r, "issn")

	journal, err := h.services.JournalService.ByISSN(r.Context(), issn)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, journal)
}
