package mocks

import (
	"context"
	"sync"
)

// MockRestarter is a mock implementation of the domain.Restarter interface.
type MockRestarter struct {
	// Accept is returned by Restart when RestartFunc is nil
	Accept bool

	// RestartFunc is called by Restart if not nil
	RestartFunc func(ctx context.Context, service string) bool

	mu       sync.Mutex
	services []string
}

// NewMockRestarter creates a restarter that answers every request with accept.
func NewMockRestarter(accept bool) *MockRestarter {
	return &MockRestarter{Accept: accept}
}

// Restart records service and reports whether the request was accepted.
func (m *MockRestarter) Restart(ctx context.Context, service string) bool {
	m.mu.Lock()
	m.services = append(m.services, service)
	m.mu.Unlock()

	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, service)
	}
	return m.Accept
}

// Services returns the requested services in call order.
func (m *MockRestarter) Services() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.services...)
}
