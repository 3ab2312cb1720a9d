package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveBackendCall(t *testing.T) {
	m := New()

	m.ObserveBackendCall("read", "success", 10*time.Millisecond)
	m.ObserveBackendCall("read", "success", 20*time.Millisecond)
	m.ObserveBackendCall("write", "timeout", 5*time.Second)

	if got := testutil.ToFloat64(m.BackendCalls.WithLabelValues("read", "success")); got != 2 {
		t.Errorf("read/success = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.BackendCalls.WithLabelValues("write", "timeout")); got != 1 {
		t.Errorf("write/timeout = %v, want 1", got)
	}
}

func TestObserveRestart(t *testing.T) {
	m := New()

	m.ObserveRestart("disk2iso", true)
	m.ObserveRestart("disk2iso", false)
	m.ObserveRestart("disk2iso", false)

	if got := testutil.ToFloat64(m.Restarts.WithLabelValues("disk2iso", "success")); got != 1 {
		t.Errorf("success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Restarts.WithLabelValues("disk2iso", "failure")); got != 2 {
		t.Errorf("failure = %v, want 2", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	// Must not panic
	m.ObserveBackendCall("read", "success", time.Millisecond)
	m.ObserveRestart("disk2iso", true)
	m.ObserveHTTPRequest("GET", "/api/config/{key}", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("nil metrics handler status = %d, want 404", rec.Code)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveHTTPRequest("GET", "/api/config/{key}", 200, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `disk2iso_http_requests_total{method="GET",route="/api/config/{key}",status="200"} 1`) {
		t.Errorf("exposition does not contain request counter:\n%s", body)
	}
}
