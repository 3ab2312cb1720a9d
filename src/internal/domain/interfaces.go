// Package domain defines core interfaces and value types shared by the
// configuration backends, the restart trigger and the request orchestrator.
//
// This package contains the fundamental interfaces that enable loose coupling between
// components and facilitate testing through dependency injection.
package domain

import "context"

// Executor runs a single external process and waits for it.
//
// A non-zero exit status is not an error: it is reported in CallResult.ExitCode.
// Errors are reserved for timeouts (errors.ErrCodeTimeout) and faults where the
// process could not be run at all (errors.ErrCodeInternal).
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (*CallResult, error)
}

// ConfigBackend is the narrow contract to the external configuration authority.
//
// Each call is a single atomic operation of the store; implementations do not
// coordinate concurrent callers beyond what the store itself guarantees.
type ConfigBackend interface {
	// Name identifies the transport ("shell", "file", "memory").
	Name() string

	// Get returns the literal value of key in scope.
	Get(ctx context.Context, scope, key string) (string, error)

	// Set stores value for key in scope.
	Set(ctx context.Context, scope, key, value string) error
}

// ConfigAdapter converts backend calls into structured outcomes. It never
// returns errors or panics to its caller.
type ConfigAdapter interface {
	Read(ctx context.Context, key string) Outcome
	Write(ctx context.Context, key, value string) Outcome
}

// Restarter asks the process supervisor to restart a service.
//
// The result reports whether the request was accepted, not whether the
// service converged.
type Restarter interface {
	Restart(ctx context.Context, service string) bool
}
