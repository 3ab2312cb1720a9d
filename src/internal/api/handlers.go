package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
	"github.com/disk2iso/disk2iso-web/src/internal/registry"
)

// ConfigService is the request orchestrator the handlers delegate to.
// This allows the API to be tested without a real config store.
type ConfigService interface {
	Get(ctx context.Context, key string) domain.Outcome
	Set(ctx context.Context, key, value string) domain.Outcome
	GetAll(ctx context.Context) domain.BatchOutcome
	ListKeys() []registry.Key
}

// Handler manages all API endpoints and dependencies.
type Handler struct {
	service ConfigService
	version VersionInfo
}

// NewHandler creates a new API handler.
func NewHandler(service ConfigService, version VersionInfo) *Handler {
	return &Handler{
		service: service,
		version: version,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Debugf("Failed to write response: %v", err)
	}
}

// writeJSONData writes a successful JSON response.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
