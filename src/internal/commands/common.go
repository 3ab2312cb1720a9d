package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/disk2iso/disk2iso-web/src/internal/api"
	"github.com/disk2iso/disk2iso-web/src/internal/config"
	"github.com/disk2iso/disk2iso-web/src/internal/core"
	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/errors"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Version    api.VersionInfo
	// Stdout receives command output. Nil means os.Stdout.
	Stdout io.Writer
}

func (c *AppContext) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDependencies loads the configuration and builds the application graph.
func loadDependencies(configPath string) (*config.Config, *core.AppDependencies, error) {
	cfg, err := loadAndValidateConfigOrFail(configPath)
	if err != nil {
		return nil, nil, err
	}
	deps, err := core.NewAppDependencies(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create dependencies: %w", err)
	}
	return cfg, deps, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outcomeError turns an unsuccessful outcome into an error for the exit status.
func outcomeError(out domain.Outcome) error {
	if out.Success {
		return nil
	}
	return errors.New(out.Code, out.Message)
}

// requireArgs checks the positional arguments of a command.
func requireArgs(name string, args []string, usage ...string) error {
	if len(args) != len(usage) {
		return errors.NewValidationError(fmt.Sprintf("usage: %s %s", name, strings.Join(usage, " ")), nil)
	}
	return nil
}
