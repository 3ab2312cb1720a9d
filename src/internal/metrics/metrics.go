// Package metrics exposes Prometheus collectors for disk2iso-web.
//
// All collectors live on a dedicated registry so that several instances can
// coexist in tests. Every method is safe to call on a nil *Metrics, which
// turns instrumentation off.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "disk2iso"

// Metrics holds the collectors.
//
// Usage:
//
//	m := metrics.New()
//	m.ObserveBackendCall("read", "success", 12*time.Millisecond)
//	r.Handle("/metrics", m.Handler())
type Metrics struct {
	Registry *prometheus.Registry

	// BackendCalls counts config-store calls.
	// Labels: op (read|write), result (success|backend_error|timeout|internal_error)
	BackendCalls *prometheus.CounterVec

	// BackendCallDuration measures config-store call latency in seconds.
	// Labels: op
	BackendCallDuration *prometheus.HistogramVec

	// Restarts counts service restart requests.
	// Labels: service, result (success|failure)
	Restarts *prometheus.CounterVec

	// HTTPRequests counts API requests.
	// Labels: method, route, status
	HTTPRequests *prometheus.CounterVec

	// HTTPRequestDuration measures API request latency in seconds.
	// Labels: method, route
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		BackendCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_calls_total",
			Help:      "Number of config store calls by operation and result.",
		}, []string{"op", "result"}),
		BackendCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_call_duration_seconds",
			Help:      "Latency of config store calls.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		}, []string{"op"}),
		Restarts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restarts_total",
			Help:      "Number of service restart requests by service and result.",
		}, []string{"service", "result"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of API requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of API requests.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		}, []string{"method", "route"}),
	}
}

// ObserveBackendCall records one config store call.
func (m *Metrics) ObserveBackendCall(op, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.BackendCalls.WithLabelValues(op, result).Inc()
	m.BackendCallDuration.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveRestart records one restart request.
func (m *Metrics) ObserveRestart(service string, accepted bool) {
	if m == nil {
		return
	}
	result := "success"
	if !accepted {
		result = "failure"
	}
	m.Restarts.WithLabelValues(service, result).Inc()
}

// ObserveHTTPRequest records one API request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
