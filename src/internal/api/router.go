package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/disk2iso/disk2iso-web/src/internal/metrics"
)

// RouterOptions controls the optional parts of the router.
type RouterOptions struct {
	// PrivateOnly restricts access to private subnets.
	PrivateOnly bool
	// Metrics enables request metrics and the /metrics endpoint. May be nil.
	Metrics *metrics.Metrics
}

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Metrics(opts.Metrics))
	if opts.PrivateOnly {
		r.Use(PrivateSubnetOnly) // Restrict access to private subnets
	}
	r.Use(CORS)
	r.Use(JSONContentType)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteMethodNotAllowed(w)
	})

	r.Route("/api/config", func(r chi.Router) {
		r.Get("/", h.ListConfigKeys)
		// Static segment wins over {key}
		r.Get("/all", h.GetAllConfigValues)
		r.Get("/{key}", h.GetConfigValue)
		r.Put("/{key}", h.SetConfigValue)
	})

	r.Get("/health", h.CheckHealth)

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	return r
}
