package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/builtin", func(r chi.Router) {
		r.Get("/", h.listBuiltinStyles)
		r.Get("/{name}", h.getBuiltinStyle)
	})

	router.Route("/api/styles", func(r chi.Router) {
		r.Get("/", h.listStyles)
		r.Post("/validate", h.validateStyle)
		r.Get("/{name}", h.getStyle)
		r.With(h.requireWriteToken).Put("/{name}", h.putStyle)
		r.With(h.requireWriteToken).Delete("/{name}", h.deleteStyle)
	})

	router.Get("/api/params", h.getParams)
	router.Get("/api/active", h.getActiveStyle)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
