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

	router.Get("/version", h.getVersion)

	router.Route("/mirror", func(r chi.Router) {
		r.Use(h.basicAuth)
		r.Use(withGZip)

		r.Head("/{name}", h.headMirror)
		r.Get("/{name}", h.getMirror)
		r.Put("/{name}", h.putMirror)
	})

	return router
}
