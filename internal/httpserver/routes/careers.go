package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/httpserver/deps"
	"github.com/pathforward/doorhub/internal/httpserver/handlers"
)

func init() { Register(registerCareers) }

func registerCareers(r chi.Router, d deps.Deps) {
	// compare before {id} so "compare" is not taken as a career id
	r.Get("/api/careers/compare", handlers.CompareCareers(d))
	r.Get("/api/careers", handlers.ListCareers(d))
	r.Get("/api/careers/{id}", handlers.GetCareer(d))
}
