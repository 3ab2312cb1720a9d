package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
	"github.com/disk2iso/disk2iso-web/src/internal/metrics"
)

// Adapter turns ConfigBackend calls into domain.Outcome values.
//
// Adapter does not consult the key registry; the orchestrator rejects
// unknown keys before reaching it.
type Adapter struct {
	backend domain.ConfigBackend
	scope   string
	metrics *metrics.Metrics
}

// NewAdapter creates an adapter for keys of scope. m may be nil.
func NewAdapter(b domain.ConfigBackend, scope string, m *metrics.Metrics) *Adapter {
	return &Adapter{backend: b, scope: scope, metrics: m}
}

// Backend returns the wrapped backend.
func (a *Adapter) Backend() domain.ConfigBackend {
	return a.backend
}

// Read fetches the current value of key.
func (a *Adapter) Read(ctx context.Context, key string) (out domain.Outcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Panic while reading %s: %v", key, r)
			out = domain.FailureOutcome(errors.ErrCodeInternal, fmt.Sprint(r))
		}
		a.metrics.ObserveBackendCall("read", resultLabel(out), time.Since(start))
	}()

	value, err := a.backend.Get(ctx, a.scope, key)
	if err != nil {
		log.Debugf("Reading %s via %s backend failed: %v", key, a.backend.Name(), err)
		return failure(err, "Error reading config key: "+key)
	}
	return domain.ValueOutcome(value)
}

// Write stores value for key.
func (a *Adapter) Write(ctx context.Context, key, value string) (out domain.Outcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Panic while writing %s: %v", key, r)
			out = domain.FailureOutcome(errors.ErrCodeInternal, fmt.Sprint(r))
		}
		a.metrics.ObserveBackendCall("write", resultLabel(out), time.Since(start))
	}()

	if err := a.backend.Set(ctx, a.scope, key, value); err != nil {
		log.Debugf("Writing %s via %s backend failed: %v", key, a.backend.Name(), err)
		return failure(err, "Error writing config key: "+key)
	}
	return domain.WrittenOutcome()
}

// failure maps err to the outcome message the API reports.
func failure(err error, backendMessage string) domain.Outcome {
	code := errors.CodeOf(err)
	switch code {
	case errors.ErrCodeBackend:
		return domain.FailureOutcome(code, backendMessage)
	case errors.ErrCodeTimeout:
		return domain.FailureOutcome(code, "Timeout")
	}
	return domain.FailureOutcome(code, faultText(err))
}

// faultText is the innermost description of an unexpected fault.
func faultText(err error) string {
	if e, ok := err.(*errors.Error); ok {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

func resultLabel(o domain.Outcome) string {
	if o.Success {
		return "success"
	}
	return strings.ToLower(string(o.Code))
}
