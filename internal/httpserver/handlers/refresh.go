package handlers

import (
	"net/http"

	"github.com/pathforward/doorhub/internal/httpserver/deps"
)

type refreshResponse struct {
	Status string `json:"status"`
}

// TriggerRefresh queues a manual catalog refresh. Calls are
// debounced, so hammering the endpoint still produces one reload.
func TriggerRefresh(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.RefreshTrigger == nil {
			writeError(w, http.StatusServiceUnavailable, "refresh not available")
			return
		}
		d.RefreshTrigger.Call(struct{}{})
		writeJSON(w, http.StatusAccepted, refreshResponse{Status: "refresh queued"})
	}
}
