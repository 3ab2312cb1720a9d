package service

import (
	"context"
	"testing"
	"time"

	"github.com/disk2iso/disk2iso-web/src/internal/backend"
	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
	"github.com/disk2iso/disk2iso-web/src/internal/mocks"
	"github.com/disk2iso/disk2iso-web/src/internal/registry"
)

func init() {
	log.DisableLogs()
}

func newTestService(b domain.ConfigBackend, r domain.Restarter) *ConfigService {
	return NewConfigService(registry.Default(), backend.NewAdapter(b, "disk2iso", nil), r)
}

func TestConfigService_InvalidKeyNeverReachesBackend(t *testing.T) {
	b := mocks.NewMockBackend(nil)
	r := mocks.NewMockRestarter(true)
	svc := newTestService(b, r)
	ctx := context.Background()

	for _, key := range []string{"UNKNOWN_KEY", "default_output_dir", "", " DEFAULT_OUTPUT_DIR"} {
		out := svc.Get(ctx, key)
		if out.Success || out.Code != errors.ErrCodeInvalidKey {
			t.Errorf("Get(%q) = %+v, want invalid key", key, out)
		}
		if out.Message != "Unknown config key: "+key {
			t.Errorf("Get(%q) message = %q", key, out.Message)
		}

		out = svc.Set(ctx, key, "x")
		if out.Success || out.Code != errors.ErrCodeInvalidKey {
			t.Errorf("Set(%q) = %+v, want invalid key", key, out)
		}
	}

	if b.GetCalls() != 0 || b.SetCalls() != 0 {
		t.Errorf("backend was called: get=%d set=%d", b.GetCalls(), b.SetCalls())
	}
	if len(r.Services()) != 0 {
		t.Errorf("restarter was called: %v", r.Services())
	}
}

func TestConfigService_RoundTrip(t *testing.T) {
	svc := newTestService(backend.NewMemoryBackend(), mocks.NewMockRestarter(true))
	ctx := context.Background()

	for _, k := range registry.Default().Names() {
		t.Run(k, func(t *testing.T) {
			if out := svc.Set(ctx, k, "v-"+k); !out.Success {
				t.Fatalf("Set() failed: %s", out.Message)
			}
			out := svc.Get(ctx, k)
			if !out.Success || out.Value == nil || *out.Value != "v-"+k {
				t.Errorf("Get() = %+v", out)
			}
			if out.RestartRequired != nil {
				t.Errorf("read outcome must not carry restart information")
			}
		})
	}
}

func TestConfigService_SetRestart(t *testing.T) {
	tests := []struct {
		name            string
		key             string
		accept          bool
		wantRequired    bool
		wantService     string
		wantFailed      bool
		wantRestartCall bool
	}{
		{
			name:            "restart accepted",
			key:             "DEFAULT_OUTPUT_DIR",
			accept:          true,
			wantRequired:    true,
			wantService:     "disk2iso",
			wantRestartCall: true,
		},
		{
			name:            "restart refused",
			key:             "DEFAULT_OUTPUT_DIR",
			accept:          false,
			wantRequired:    true,
			wantFailed:      true,
			wantRestartCall: true,
		},
		{
			name:   "no restart needed",
			key:    "DDRESCUE_RETRIES",
			accept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mocks.NewMockBackend(nil)
			r := mocks.NewMockRestarter(tt.accept)
			svc := newTestService(b, r)

			out := svc.Set(context.Background(), tt.key, "/srv/iso")
			if !out.Success {
				t.Fatalf("write must succeed regardless of restarts: %+v", out)
			}
			if out.RestartRequired == nil || *out.RestartRequired != tt.wantRequired {
				t.Errorf("RestartRequired = %v, want %v", out.RestartRequired, tt.wantRequired)
			}
			if out.RestartService != tt.wantService {
				t.Errorf("RestartService = %q, want %q", out.RestartService, tt.wantService)
			}
			if out.RestartFailed != tt.wantFailed {
				t.Errorf("RestartFailed = %v, want %v", out.RestartFailed, tt.wantFailed)
			}
			if got := len(r.Services()) > 0; got != tt.wantRestartCall {
				t.Errorf("restart called = %v, want %v", got, tt.wantRestartCall)
			}
			if v, _ := b.Value(tt.key); v != "/srv/iso" {
				t.Errorf("value not stored: %q", v)
			}
		})
	}
}

func TestConfigService_FailedWriteSkipsRestart(t *testing.T) {
	b := mocks.NewMockBackend(nil)
	b.SetFunc = func(ctx context.Context, scope, key, value string) error {
		return errors.NewBackendError("exit code 1", nil)
	}
	r := mocks.NewMockRestarter(true)
	svc := newTestService(b, r)

	out := svc.Set(context.Background(), "DEFAULT_OUTPUT_DIR", "/srv/iso")
	if out.Success {
		t.Fatal("expected failure")
	}
	if out.Message != "Error writing config key: DEFAULT_OUTPUT_DIR" {
		t.Errorf("Message = %q", out.Message)
	}
	if out.RestartRequired != nil {
		t.Error("failed write must not carry restart information")
	}
	if len(r.Services()) != 0 {
		t.Error("restart must not run after a failed write")
	}
}

func TestConfigService_NilRestarter(t *testing.T) {
	svc := newTestService(mocks.NewMockBackend(nil), nil)

	out := svc.Set(context.Background(), "DEFAULT_OUTPUT_DIR", "/srv/iso")
	if !out.Success || !out.RestartFailed {
		t.Errorf("expected saved value with failed restart, got %+v", out)
	}
}

func TestConfigService_GetAll(t *testing.T) {
	b := mocks.NewMockBackend(map[string]string{
		"DEFAULT_OUTPUT_DIR":           "/media/iso",
		"DDRESCUE_RETRIES":             "3",
		"USB_DRIVE_DETECTION_ATTEMPTS": "5",
	})
	svc := newTestService(b, nil)

	batch := svc.GetAll(context.Background())
	if !batch.Success {
		t.Fatal("batch must always succeed")
	}
	if len(batch.Keys) != registry.Default().Len() {
		t.Fatalf("Keys = %v", batch.Keys)
	}
	for i, k := range registry.Default().Names() {
		if batch.Keys[i] != k {
			t.Errorf("Keys[%d] = %q, want %q", i, batch.Keys[i], k)
		}
	}
	if v := batch.Values["DDRESCUE_RETRIES"]; v == nil || *v != "3" {
		t.Errorf("DDRESCUE_RETRIES = %v", v)
	}
	if v, ok := batch.Values["USB_DRIVE_DETECTION_DELAY"]; !ok || v != nil {
		t.Errorf("unreadable key must map to nil, got %v (present=%v)", v, ok)
	}
	if b.GetCalls() != registry.Default().Len() {
		t.Errorf("expected one read per key, got %d", b.GetCalls())
	}
}

func TestConfigService_Timeout(t *testing.T) {
	exec := &mocks.MockExecutor{
		RunFunc: func(ctx context.Context, name string, args ...string) (*domain.CallResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	shell, err := backend.NewShellBackend(exec, backend.ShellConfig{
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	r := mocks.NewMockRestarter(true)
	svc := newTestService(shell, r)

	start := time.Now()
	out := svc.Set(context.Background(), "DEFAULT_OUTPUT_DIR", "/srv/iso")
	if out.Success || out.Code != errors.ErrCodeTimeout || out.Message != "Timeout" {
		t.Errorf("Set() = %+v, want timeout", out)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Set() took %v", elapsed)
	}
	if len(r.Services()) != 0 {
		t.Error("restart must not run after a timed out write")
	}
}

func TestConfigService_ListKeys(t *testing.T) {
	svc := newTestService(mocks.NewMockBackend(nil), nil)

	keys := svc.ListKeys()
	if len(keys) != 4 {
		t.Fatalf("expected 4 keys, got %d", len(keys))
	}
	if keys[0].Name != "DEFAULT_OUTPUT_DIR" || keys[0].RestartService != "disk2iso" {
		t.Errorf("unexpected first key: %+v", keys[0])
	}
	for _, k := range keys[1:] {
		if k.RequiresRestart() {
			t.Errorf("%s must not require a restart", k.Name)
		}
	}
}
