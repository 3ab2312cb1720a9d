package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/disk2iso/disk2iso-web/src/internal/errors"
)

// MemoryBackend is a faithful in-process store. It is used for local
// development and in tests.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

// NewMemoryBackend creates an empty store.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]map[string]string)}
}

// Seed stores values for scope without going through Set.
func (b *MemoryBackend) Seed(scope string, values map[string]string) *MemoryBackend {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.values[scope] == nil {
		b.values[scope] = make(map[string]string, len(values))
	}
	for k, v := range values {
		b.values[scope][k] = v
	}
	return b
}

// Name returns "memory".
func (b *MemoryBackend) Name() string {
	return "memory"
}

// Get returns the stored value. A key that was never set is a backend error.
func (b *MemoryBackend) Get(ctx context.Context, scope, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classify("memory backend", err)
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[scope][key]
	if !ok {
		return "", errors.NewBackendError(fmt.Sprintf("%s is not set in %s", key, scope), nil)
	}
	return v, nil
}

// Set stores value.
func (b *MemoryBackend) Set(ctx context.Context, scope, key, value string) error {
	if err := ctx.Err(); err != nil {
		return classify("memory backend", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.values[scope] == nil {
		b.values[scope] = make(map[string]string)
	}
	b.values[scope][key] = value
	return nil
}
