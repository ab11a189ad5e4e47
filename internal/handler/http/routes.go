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
	router.Use(withGZip)

	router.Post("/api/configurations", h.create)
	router.Get("/api/configurations", h.list)
	router.Get("/api/configurations/latest", h.getLatest)
	router.Get("/api/configurations/{id}", h.getByID)
	router.Put("/api/configurations/{id}", h.update)
	router.Delete("/api/configurations/{id}", h.delete)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
