package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(h.requestTimeout))

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/signin", h.signin)
	})

	// routes that require an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.sessionAuth)

		r.Put("/api/user/update/{userID}", h.updateUser)
		r.Delete("/api/user/delete/{userID}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
