package mocks

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/disk2iso/disk2iso-web/src/internal/errors"
)

// MockBackend is an in-memory domain.ConfigBackend that counts its calls.
//
// GetFunc and SetFunc override the default map-backed behavior.
type MockBackend struct {
	GetFunc func(ctx context.Context, scope, key string) (string, error)
	SetFunc func(ctx context.Context, scope, key, value string) error

	mu     sync.Mutex
	values map[string]string

	getCalls atomic.Int64
	setCalls atomic.Int64
}

// NewMockBackend creates a backend holding values, keyed by config key.
func NewMockBackend(values map[string]string) *MockBackend {
	m := &MockBackend{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Name returns "mock".
func (m *MockBackend) Name() string {
	return "mock"
}

// Get returns the stored value, or a backend error when the key is absent.
func (m *MockBackend) Get(ctx context.Context, scope, key string) (string, error) {
	m.getCalls.Add(1)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, scope, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", errors.NewBackendError(key+" is not set", nil)
	}
	return v, nil
}

// Set stores value.
func (m *MockBackend) Set(ctx context.Context, scope, key, value string) error {
	m.setCalls.Add(1)
	if m.SetFunc != nil {
		return m.SetFunc(ctx, scope, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Value returns the stored value of key.
func (m *MockBackend) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// GetCalls returns the number of Get invocations.
func (m *MockBackend) GetCalls() int {
	return int(m.getCalls.Load())
}

// SetCalls returns the number of Set invocations.
func (m *MockBackend) SetCalls() int {
	return int(m.setCalls.Load())
}
