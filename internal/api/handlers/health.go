package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint.
// It never touches the report stores, so it stays cheap while a sweep runs.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
