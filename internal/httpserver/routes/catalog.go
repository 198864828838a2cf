package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/httpserver/deps"
	"github.com/pathforward/doorhub/internal/httpserver/handlers"
	"github.com/pathforward/doorhub/internal/httpserver/mw"
)

func init() { Register(registerCatalog) }

func registerCatalog(r chi.Router, d deps.Deps) {
	r.Get("/api/scholarships", handlers.ListScholarships(d))
	r.Get("/api/universities", handlers.ListUniversities(d))
	r.Get("/api/vocational-schools", handlers.ListVocationalSchools(d))
	r.Get("/api/vocational-schools/{id}", handlers.GetVocationalSchool(d))

	// Detail pages ask students to sign in when auth is configured.
	gated := r.With(mw.AuthGate(d.Auth, d.Logger))
	gated.Get("/api/scholarships/{id}", handlers.GetScholarship(d))
	gated.Post("/api/scholarships/{id}/eligibility", handlers.CheckEligibility(d))
	gated.Get("/api/universities/{id}", handlers.GetUniversity(d))
}
