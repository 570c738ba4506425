package http

import (
	"net/http"

	"github.com/MKhiriev/journal-directory/internal/service"
)

// withReadiness rejects API requests until the one-time startup
// initialization has completed. Before that, serving lookups could hit an
// unmigrated schema.
func (h *Handler) withReadiness(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.JournalService.Ready() {
			writeError(w, r, service.ErrServiceNotReady)
			return
		}

		next.ServeHTTP(w, r)
	})
}
