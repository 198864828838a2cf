package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/pathforward/doorhub/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	LastRefresh string `json:"last_refresh,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Catalog    map[string]int             `json:"catalog"`
	Sessions   int                        `json:"sessions"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the health of each backing component. Admin only.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts := d.Index.Counts()
		lastRefresh := d.Index.LastRefresh()
		refreshStr := "never"
		if !lastRefresh.IsZero() {
			refreshStr = lastRefresh.Format("2006-01-02 15:04:05")
		}

		catalogOK := true
		for _, n := range counts {
			if n == 0 {
				catalogOK = false
			}
		}

		components := map[string]componentStatus{
			"catalog":  {OK: catalogOK, LastRefresh: refreshStr},
			"postgres": checkPinger(d.DB),
			"redis":    checkRedis(d),
		}

		mode := "ok"
		switch {
		case !catalogOK:
			mode = "critical"
		case !components["postgres"].OK || !components["redis"].OK:
			mode = "degraded"
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       mode,
			Catalog:    counts,
			Sessions:   d.Sessions.Count(),
			Components: components,
		})
	}
}

func checkPinger(p deps.Pinger) componentStatus {
	if p == nil {
		return componentStatus{OK: false, Error: "not configured"}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return componentStatus{OK: false, Error: err.Error()}
	}
	return componentStatus{OK: true}
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{OK: false, Error: "client not initialized"}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{OK: false, Error: err.Error()}
	}
	return componentStatus{OK: true}
}
