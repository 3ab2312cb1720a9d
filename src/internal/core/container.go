// Package core wires the application components together.
package core

import (
	"fmt"

	"github.com/disk2iso/disk2iso-web/src/internal/backend"
	"github.com/disk2iso/disk2iso-web/src/internal/config"
	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/metrics"
	"github.com/disk2iso/disk2iso-web/src/internal/registry"
	"github.com/disk2iso/disk2iso-web/src/internal/restart"
	"github.com/disk2iso/disk2iso-web/src/internal/service"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// This container provides a centralized place to manage dependencies and enables:
//   - Easy testing with mock implementations
//   - Configuration-driven dependency creation
//   - Explicit dependency management instead of global state
//
// Usage:
//
//	deps, err := core.NewAppDependencies(cfg)
//	if err != nil {
//	    return err
//	}
//	out := deps.ConfigService().Get(ctx, "DEFAULT_OUTPUT_DIR")
type AppDependencies struct {
	metrics   *metrics.Metrics
	registry  *registry.Registry
	executor  domain.Executor
	backend   domain.ConfigBackend
	adapter   *backend.Adapter
	restarter domain.Restarter
	service   *service.ConfigService
}

// NewAppDependencies creates a new dependency container with production implementations
// selected by cfg.General.Backend.
func NewAppDependencies(cfg *config.Config) (*AppDependencies, error) {
	executor := backend.NewProcessExecutor()

	store, err := NewBackend(cfg, executor)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	trigger, err := restart.NewTrigger(executor, cfg.Restart.Command, cfg.Restart.Timeout.Std(), m)
	if err != nil {
		return nil, err
	}

	return NewAppDependenciesWith(cfg.General.Scope, executor, store, trigger, m), nil
}

// NewAppDependenciesWith assembles a container from explicit collaborators.
// m may be nil to disable metrics.
func NewAppDependenciesWith(scope string, executor domain.Executor, store domain.ConfigBackend, restarter domain.Restarter, m *metrics.Metrics) *AppDependencies {
	reg := registry.Default()
	adapter := backend.NewAdapter(store, scope, m)

	return &AppDependencies{
		metrics:   m,
		registry:  reg,
		executor:  executor,
		backend:   store,
		adapter:   adapter,
		restarter: restarter,
		service:   service.NewConfigService(reg, adapter, restarter),
	}
}

// NewBackend creates the config store transport named by the configuration.
func NewBackend(cfg *config.Config, executor domain.Executor) (domain.ConfigBackend, error) {
	switch cfg.General.Backend {
	case config.BACKEND_SHELL:
		shell, err := backend.NewShellBackend(executor, backend.ShellConfig{
			Shell:        cfg.Shell.Shell,
			Library:      cfg.GetAbsLibraryPath(),
			ReadScript:   cfg.Shell.ReadScript,
			WriteScript:  cfg.Shell.WriteScript,
			ReadTimeout:  cfg.Shell.ReadTimeout.Std(),
			WriteTimeout: cfg.Shell.WriteTimeout.Std(),
		})
		if err != nil {
			return nil, err
		}
		return shell, nil
	case config.BACKEND_FILE:
		return backend.NewFileBackend(cfg.GetAbsConfDir()), nil
	case config.BACKEND_MEMORY:
		return backend.NewMemoryBackend(), nil
	}
	return nil, errors.NewConfigError(fmt.Sprintf("unknown backend %q", cfg.General.Backend), nil)
}

// Metrics returns the metrics collectors, or nil when disabled.
func (d *AppDependencies) Metrics() *metrics.Metrics {
	return d.metrics
}

// Registry returns the key registry.
func (d *AppDependencies) Registry() *registry.Registry {
	return d.registry
}

// Executor returns the process executor.
func (d *AppDependencies) Executor() domain.Executor {
	return d.executor
}

// Backend returns the config store transport.
func (d *AppDependencies) Backend() domain.ConfigBackend {
	return d.backend
}

// Restarter returns the restart trigger.
func (d *AppDependencies) Restarter() domain.Restarter {
	return d.restarter
}

// ConfigService returns the request orchestrator.
func (d *AppDependencies) ConfigService() *service.ConfigService {
	return d.service
}
