package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/portals", func(r chi.Router) {
			r.Get("/", h.listPortals)
			r.Get("/{portalID}", h.getPortal)
			r.Get("/{portalID}/default", h.isDefaultPortal)
		})
	})

	router.MethodNotAllowed(methodNotAllowed)
	router.NotFound(notFound)

	return router
}
