package api

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPrivateSubnetOnly(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := PrivateSubnetOnly(ok)

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       int
	}{
		{"lan client", "192.168.1.20:51000", "", http.StatusOK},
		{"loopback v6", "[::1]:51000", "", http.StatusOK},
		{"public client", "8.8.8.8:51000", "", http.StatusForbidden},
		{"forwarded public", "127.0.0.1:51000", "203.0.113.7, 10.0.0.1", http.StatusForbidden},
		{"garbage", "not-an-ip", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"172.31.255.255", true},
		{"172.32.0.1", false},
		{"fe80::1", true},
		{"fd12:3456::1", true},
		{"2001:db8::1", false},
	}
	for _, tt := range tests {
		if got := IsPrivateIP(net.ParseIP(tt.ip)); got != tt.want {
			t.Errorf("IsPrivateIP(%s) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}

func TestRecovery(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"success\":false,\"message\":\"Internal server error\"}\n" {
		t.Errorf("body = %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(http.NotFoundHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/config/DDRESCUE_RETRIES", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin")
	}
}

func TestJSONContentType(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := JSONContentType(ok)

	for ct, want := range map[string]int{
		"application/json":                http.StatusOK,
		"application/json; charset=utf-8": http.StatusOK,
		"text/plain":                      http.StatusBadRequest,
	} {
		req := httptest.NewRequest(http.MethodPut, "/api/config/X", nil)
		req.ContentLength = 10
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Errorf("Content-Type %q: status = %d, want %d", ct, rec.Code, want)
		}
	}
}
