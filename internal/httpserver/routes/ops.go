package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/httpserver/deps"
	"github.com/pathforward/doorhub/internal/httpserver/handlers"
	"github.com/pathforward/doorhub/internal/httpserver/mw"
)

func init() { Register(registerOps) }

func registerOps(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
	r.Get("/readyz", handlers.Readyz(d))

	admin := r.With(mw.RequireAdminToken(d.AdminToken))
	admin.Get("/api/infra", handlers.Infra(d))
	admin.Post("/api/refresh", handlers.TriggerRefresh(d))
}
