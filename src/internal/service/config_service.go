package service

import (
	"context"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
	"github.com/disk2iso/disk2iso-web/src/internal/registry"
)

// ConfigService orchestrates config reads and writes.
//
// It keeps no state across requests and is safe for concurrent use as long
// as its collaborators are.
type ConfigService struct {
	registry  *registry.Registry
	adapter   domain.ConfigAdapter
	restarter domain.Restarter
}

// NewConfigService creates a new config service.
func NewConfigService(reg *registry.Registry, adapter domain.ConfigAdapter, restarter domain.Restarter) *ConfigService {
	return &ConfigService{
		registry:  reg,
		adapter:   adapter,
		restarter: restarter,
	}
}

// Registry returns the key registry requests are validated against.
func (s *ConfigService) Registry() *registry.Registry {
	return s.registry
}

// Get reads the current value of key.
func (s *ConfigService) Get(ctx context.Context, key string) domain.Outcome {
	if !s.registry.IsKnown(key) {
		return domain.InvalidKeyOutcome(key)
	}
	return s.adapter.Read(ctx, key)
}

// Set writes value for key and restarts the dependent service if the key
// requires it.
func (s *ConfigService) Set(ctx context.Context, key, value string) domain.Outcome {
	if !s.registry.IsKnown(key) {
		return domain.InvalidKeyOutcome(key)
	}

	out := s.adapter.Write(ctx, key, value)
	if !out.Success {
		return out
	}

	needed, svc := s.registry.NeedsRestart(key)
	if !needed {
		return out.WithoutRestart()
	}

	accepted := s.restarter != nil && s.restarter.Restart(ctx, svc)
	if !accepted {
		log.Warnf("%s was saved but restarting %s failed", key, svc)
	}
	return out.WithRestart(svc, accepted)
}

// GetAll reads every registry key one by one. A key that cannot be read is
// reported with a nil value; the batch itself always succeeds.
func (s *ConfigService) GetAll(ctx context.Context) domain.BatchOutcome {
	names := s.registry.Names()
	batch := domain.BatchOutcome{
		Success: true,
		Keys:    names,
		Values:  make(map[string]*string, len(names)),
	}

	for _, name := range names {
		out := s.adapter.Read(ctx, name)
		if !out.Success {
			log.Debugf("Batch read of %s failed: %s", name, out.Message)
			batch.Values[name] = nil
			continue
		}
		batch.Values[name] = out.Value
	}
	return batch
}

// ListKeys returns the registry in table order.
func (s *ConfigService) ListKeys() []registry.Key {
	return s.registry.Keys()
}
