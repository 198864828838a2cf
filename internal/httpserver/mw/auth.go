package mw

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/pathforward/doorhub/internal/auth"
	"github.com/pathforward/doorhub/internal/logger"
)

type ctxKey int

const userKey ctxKey = iota

// UserFrom returns the authenticated user attached to the request,
// if any.
func UserFrom(ctx context.Context) (auth.User, bool) {
	u, ok := ctx.Value(userKey).(auth.User)
	return u, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RequireAuth rejects requests without a valid bearer token. With a
// nil provider the endpoint is effectively disabled.
func RequireAuth(provider auth.Provider, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if provider == nil {
				http.Error(w, "authentication not configured", http.StatusNotImplemented)
				return
			}
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			user, err := provider.UserFromToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					http.Error(w, "invalid token", http.StatusUnauthorized)
					return
				}
				log.Error("userinfo lookup failed", logger.Error(err))
				http.Error(w, "auth backend unavailable", http.StatusBadGateway)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
		})
	}
}

// AuthGate requires a valid bearer token when a provider is
// configured and passes everything through when auth is disabled, so
// a development instance stays fully browsable.
func AuthGate(provider auth.Provider, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		required := RequireAuth(provider, log)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if provider == nil {
				next.ServeHTTP(w, r)
				return
			}
			required.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth attaches a user when a valid token is present and
// lets the request through anonymously otherwise.
func OptionalAuth(provider auth.Provider, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if provider == nil || token == "" {
				next.ServeHTTP(w, r)
				return
			}
			user, err := provider.UserFromToken(r.Context(), token)
			if err != nil {
				if !errors.Is(err, auth.ErrUnauthenticated) {
					log.Warn("userinfo lookup failed, treating as anonymous", logger.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
		})
	}
}

// RequireAdminToken gates operational endpoints behind a shared
// token. An empty configured token closes them completely.
func RequireAdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				http.Error(w, "admin endpoints disabled", http.StatusForbidden)
				return
			}
			got := bearerToken(r)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
