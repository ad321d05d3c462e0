package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.metrics.middleware)

	router.Get("/status", h.getStatus)
	router.Get("/healthz", h.getHealth)
	router.Get("/version", h.getVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
