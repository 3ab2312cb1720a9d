package domain

import (
	"time"

	"github.com/disk2iso/disk2iso-web/src/internal/errors"
)

// Outcome is the structured result of a single config read or write.
type Outcome struct {
	Success bool
	// Value is set only on successful reads.
	Value *string
	// Message is a human-readable failure description.
	Message string
	// Code classifies a failure; empty on success.
	Code errors.ErrorCode

	// RestartRequired is nil on reads and always set on successful writes.
	RestartRequired *bool
	// RestartService is set when a restart was requested and accepted.
	RestartService string
	// RestartFailed is set when a restart was required but not accepted.
	RestartFailed bool
}

// ValueOutcome is a successful read of value.
func ValueOutcome(value string) Outcome {
	return Outcome{Success: true, Value: &value}
}

// WrittenOutcome is a successful write before restart handling.
func WrittenOutcome() Outcome {
	return Outcome{Success: true}
}

// FailureOutcome is an unsuccessful read or write.
func FailureOutcome(code errors.ErrorCode, message string) Outcome {
	return Outcome{Success: false, Code: code, Message: message}
}

// InvalidKeyOutcome rejects a key that is not in the registry.
func InvalidKeyOutcome(key string) Outcome {
	err := errors.NewInvalidKeyError(key)
	return FailureOutcome(err.Code, err.Message)
}

// WithoutRestart marks a write that needs no service restart.
func (o Outcome) WithoutRestart() Outcome {
	required := false
	o.RestartRequired = &required
	o.RestartService = ""
	o.RestartFailed = false
	return o
}

// WithRestart folds the result of a restart request into a write outcome.
// It never changes Success.
func (o Outcome) WithRestart(service string, accepted bool) Outcome {
	required := true
	o.RestartRequired = &required
	if accepted {
		o.RestartService = service
		o.RestartFailed = false
	} else {
		o.RestartService = ""
		o.RestartFailed = true
	}
	return o
}

// BatchOutcome is the aggregate of reading every registry key.
type BatchOutcome struct {
	Success bool
	// Keys lists every key in registry order.
	Keys []string
	// Values maps each key to its value, or nil when the read failed.
	Values map[string]*string
}

// CallResult is what an external process left behind. It is consumed
// immediately by the caller and not retained.
type CallResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Succeeded reports a zero exit status.
func (r *CallResult) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}
