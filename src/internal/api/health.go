package api

import "net/http"

// CheckHealth reports that the server is up.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, HealthResponse{Status: "ok", Version: h.version.Version})
}
