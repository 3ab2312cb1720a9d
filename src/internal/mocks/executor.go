package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
)

// ExecutorCall records one invocation of MockExecutor.Run.
type ExecutorCall struct {
	Name string
	Args []string
}

// MockExecutor is a mock implementation of the domain.Executor interface.
//
// Example usage:
//
//	mock := &MockExecutor{
//	    RunFunc: func(ctx context.Context, name string, args ...string) (*domain.CallResult, error) {
//	        return &domain.CallResult{Stdout: "/srv/iso\n"}, nil
//	    },
//	}
type MockExecutor struct {
	// RunFunc is called by Run if not nil
	RunFunc func(ctx context.Context, name string, args ...string) (*domain.CallResult, error)

	mu    sync.Mutex
	calls []ExecutorCall
}

// NewMockExecutor creates an executor whose every command exits with 0 and
// prints stdout.
func NewMockExecutor(stdout string) *MockExecutor {
	return &MockExecutor{
		RunFunc: func(ctx context.Context, name string, args ...string) (*domain.CallResult, error) {
			return &domain.CallResult{ExitCode: 0, Stdout: stdout}, nil
		},
	}
}

// Run records the call and delegates to RunFunc.
//
// If RunFunc is nil, the command exits with 0 and prints nothing.
func (m *MockExecutor) Run(ctx context.Context, name string, args ...string) (*domain.CallResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ExecutorCall{Name: name, Args: append([]string(nil), args...)})
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return &domain.CallResult{ExitCode: 0}, nil
}

// Calls returns a copy of the recorded invocations.
func (m *MockExecutor) Calls() []ExecutorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecutorCall(nil), m.calls...)
}

// LastCommandLine joins the last invocation with spaces, or returns "".
func (m *MockExecutor) LastCommandLine() string {
	calls := m.Calls()
	if len(calls) == 0 {
		return ""
	}
	last := calls[len(calls)-1]
	return strings.Join(append([]string{last.Name}, last.Args...), " ")
}
