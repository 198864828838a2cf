package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// localeFrom resolves the request locale: lang query parameter first,
// then the Accept-Language primary tag, then the configured default.
func localeFrom(r *http.Request, d deps.Deps) domain.Locale {
	if loc, ok := domain.ParseLocale(r.URL.Query().Get("lang")); ok {
		return loc
	}
	accept := r.Header.Get("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang, _, _ := strings.Cut(tag, "-")
		if loc, ok := domain.ParseLocale(lang); ok {
			return loc
		}
	}
	return d.DefaultLocale
}
