package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/httpserver/deps"
	"github.com/pathforward/doorhub/internal/httpserver/handlers"
	"github.com/pathforward/doorhub/internal/httpserver/mw"
)

func init() { Register(registerDiagnosis) }

func registerDiagnosis(r chi.Router, d deps.Deps) {
	r.Get("/api/diagnosis/questions", handlers.DiagnosisQuestions(d))

	// Anonymous sessions work; a valid token ties the result to a user.
	r.With(mw.OptionalAuth(d.Auth, d.Logger)).Post("/api/diagnosis", handlers.CreateDiagnosis(d))

	r.Get("/api/diagnosis/{id}", handlers.GetDiagnosis(d))
	r.Post("/api/diagnosis/{id}/answers", handlers.SubmitAnswers(d))
	r.Post("/api/diagnosis/{id}/next", handlers.AdvanceDiagnosis(d))
	r.Post("/api/diagnosis/{id}/reset", handlers.ResetDiagnosis(d))

	authed := r.With(mw.RequireAuth(d.Auth, d.Logger))
	authed.Get("/api/diagnosis/result", handlers.StoredDiagnosisResult(d))
	authed.Delete("/api/diagnosis/result", handlers.DeleteStoredDiagnosisResult(d))
}
