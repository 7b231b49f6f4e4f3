package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the route table. The /api/expenses tree is the canonical
// surface: every route passes the auth gate and operates owner-scoped. The
// /api/open/expenses tree is the optional unauthenticated variant over the
// same entity, mounted only when the server config asks for it; it has no
// owner invariant and exposes the path-parameter search form.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	expenses := newExpenseHandler(h.services.ExpenseService)
	open := newExpenseHandler(h.services.OpenExpenseService)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", expenses.create)
				r.Get("/", expenses.list)
				r.Get("/search", expenses.search)
				r.Get("/{id}", expenses.getByID)
				r.Put("/{id}", expenses.update)
				r.Delete("/{id}", expenses.delete)
			})
		})

		if h.cfg.EnableOpenRoutes {
			r.Route("/open/expenses", func(r chi.Router) {
				r.Post("/", open.create)
				r.Get("/", open.list)
				r.Get("/search/{query}", open.searchByPath)
				r.Get("/{id}", open.getByID)
				r.Put("/{id}", open.update)
				r.Delete("/{id}", open.delete)
			})
		}
	})

	return router
}
