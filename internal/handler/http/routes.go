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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
	})

	// routes behind the bearer credential
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/tasks", h.createTask)
		r.Get("/tasks", h.listTasks)
		r.Get("/tasks/{id}", h.getTask)
		r.Post("/tasks/update", h.updateTask)
		r.Post("/tasks/delete", h.deleteTask)
		r.Post("/clear-cache", h.clearCache)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
