package backend

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/metrics"
	"github.com/disk2iso/disk2iso-web/src/internal/mocks"
)

func TestAdapter_Read(t *testing.T) {
	tests := []struct {
		name        string
		getErr      error
		wantSuccess bool
		wantCode    errors.ErrorCode
		wantMessage string
	}{
		{name: "success", wantSuccess: true},
		{
			name:        "backend failure",
			getErr:      errors.NewBackendError("exit code 1", nil),
			wantCode:    errors.ErrCodeBackend,
			wantMessage: "Error reading config key: DDRESCUE_RETRIES",
		},
		{
			name:        "timeout",
			getErr:      errors.NewTimeoutError("bash did not finish in time", context.DeadlineExceeded),
			wantCode:    errors.ErrCodeTimeout,
			wantMessage: "Timeout",
		},
		{
			name:        "spawn fault",
			getErr:      errors.NewInternalError("failed to run /bin/bash", stderrors.New("fork/exec /bin/bash: no such file or directory")),
			wantCode:    errors.ErrCodeInternal,
			wantMessage: "fork/exec /bin/bash: no such file or directory",
		},
		{
			name:        "uncoded fault",
			getErr:      stderrors.New("disk on fire"),
			wantCode:    errors.ErrCodeInternal,
			wantMessage: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mocks.NewMockBackend(nil)
			b.GetFunc = func(ctx context.Context, scope, key string) (string, error) {
				if scope != "disk2iso" {
					t.Errorf("scope = %q, want disk2iso", scope)
				}
				if tt.getErr != nil {
					return "", tt.getErr
				}
				return "3", nil
			}
			a := NewAdapter(b, "disk2iso", nil)

			out := a.Read(context.Background(), "DDRESCUE_RETRIES")
			if out.Success != tt.wantSuccess {
				t.Fatalf("Success = %v, want %v", out.Success, tt.wantSuccess)
			}
			if tt.wantSuccess {
				if out.Value == nil || *out.Value != "3" {
					t.Errorf("Value = %v, want 3", out.Value)
				}
				return
			}
			if out.Value != nil {
				t.Errorf("Value must be nil on failure, got %q", *out.Value)
			}
			if out.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", out.Code, tt.wantCode)
			}
			if out.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", out.Message, tt.wantMessage)
			}
		})
	}
}

func TestAdapter_Write(t *testing.T) {
	b := mocks.NewMockBackend(nil)
	a := NewAdapter(b, "disk2iso", nil)

	out := a.Write(context.Background(), "DEFAULT_OUTPUT_DIR", "/srv/iso")
	if !out.Success {
		t.Fatalf("Write() failed: %s", out.Message)
	}
	if out.RestartRequired != nil {
		t.Errorf("adapter must not decide about restarts")
	}
	if v, _ := b.Value("DEFAULT_OUTPUT_DIR"); v != "/srv/iso" {
		t.Errorf("stored value = %q", v)
	}

	b.SetFunc = func(ctx context.Context, scope, key, value string) error {
		return errors.NewBackendError("exit code 2", nil)
	}
	out = a.Write(context.Background(), "DEFAULT_OUTPUT_DIR", "/srv/iso")
	if out.Success || out.Message != "Error writing config key: DEFAULT_OUTPUT_DIR" {
		t.Errorf("unexpected outcome: %+v", out)
	}
}

func TestAdapter_RecoversPanic(t *testing.T) {
	b := mocks.NewMockBackend(nil)
	b.GetFunc = func(ctx context.Context, scope, key string) (string, error) {
		panic("nil map")
	}
	a := NewAdapter(b, "disk2iso", nil)

	out := a.Read(context.Background(), "DDRESCUE_RETRIES")
	if out.Success || out.Code != errors.ErrCodeInternal || out.Message != "nil map" {
		t.Errorf("unexpected outcome: %+v", out)
	}
}

func TestAdapter_RecordsMetrics(t *testing.T) {
	m := metrics.New()
	b := mocks.NewMockBackend(map[string]string{"DDRESCUE_RETRIES": "3"})
	a := NewAdapter(b, "disk2iso", m)
	ctx := context.Background()

	a.Read(ctx, "DDRESCUE_RETRIES")
	a.Read(ctx, "MISSING")
	a.Write(ctx, "DDRESCUE_RETRIES", "4")

	if got := testutil.ToFloat64(m.BackendCalls.WithLabelValues("read", "success")); got != 1 {
		t.Errorf("read/success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.BackendCalls.WithLabelValues("read", "backend_error")); got != 1 {
		t.Errorf("read/backend_error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.BackendCalls.WithLabelValues("write", "success")); got != 1 {
		t.Errorf("write/success = %v, want 1", got)
	}
}

func TestAdapter_WithRealBackends(t *testing.T) {
	backends := map[string]domain.ConfigBackend{
		"memory": NewMemoryBackend(),
		"file":   NewFileBackend(t.TempDir()),
	}

	for name, b := range backends {
		t.Run(name, func(t *testing.T) {
			a := NewAdapter(b, "disk2iso", nil)
			ctx := context.Background()

			if out := a.Write(ctx, "USB_DRIVE_DETECTION_ATTEMPTS", "6"); !out.Success {
				t.Fatalf("Write() failed: %s", out.Message)
			}
			out := a.Read(ctx, "USB_DRIVE_DETECTION_ATTEMPTS")
			if !out.Success || out.Value == nil || *out.Value != "6" {
				t.Errorf("Read() = %+v", out)
			}
			if a.Backend().Name() != name {
				t.Errorf("Backend().Name() = %q, want %q", a.Backend().Name(), name)
			}
		})
	}
}
