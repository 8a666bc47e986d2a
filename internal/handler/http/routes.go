package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/categories", h.categories)

		r.Route("/api/areas", func(r chi.Router) {
			r.Get("/", h.listAreas)
			r.Post("/", h.createArea)
			r.Get("/{areaID}", h.getArea)
			r.Patch("/{areaID}", h.updateArea)
			r.Delete("/{areaID}", h.deleteArea)
		})
	})

	return router
}
