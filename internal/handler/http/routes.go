package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.cfg.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/healthz", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/create", h.createUser)
		r.With(h.withLoginRateLimit).Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/auth/protected", h.protected)
		r.Get("/users/me", h.me)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
