package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withReadiness)

		r.Route("/journals", func(r chi.Router) {
			r.Get("/", h.listJournals)
			r.Get("/search", h.searchJournals)
			r.Get("/specialties", h.listSpecialties)
			r.Get("/specialty/{specialty}", h.journalsBySpecialty)
			r.Get("/filter/{specialty}", h.filterBySpecialty)
			r.Get("/issn/{issn}", h.journalByISSN)
			r.Post("/update", h.refreshDatabase)
			r.Post("/map-specialty", h.remapSpecialties)
		})

		r.Get("/nlm/search", h.searchCatalog)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
