package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me", h.me)
		r.Get("/api/user", h.me)
		r.Post("/api/auth/logout", h.logout)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
