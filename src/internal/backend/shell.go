package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

// Template tags available to the read and write scripts.
const (
	TagLibrary = "library"
	TagScope   = "scope"
	TagKey     = "key"
	TagValue   = "value"
)

// Default scripts for libsettings.sh.
const (
	DefaultReadScript  = "source {{library}}\nconfig_get_value_conf {{scope}} {{key}}"
	DefaultWriteScript = "source {{library}}\nconfig_set_value_conf {{scope}} {{key}} {{value}}"
)

// ShellConfig configures ShellBackend.
type ShellConfig struct {
	// Shell is the interpreter invoked as `<Shell> -c <script>`.
	Shell string
	// Library is the absolute path of the sourced settings library.
	Library string
	// ReadScript and WriteScript are fasttemplate templates; every tag is
	// substituted shell-quoted.
	ReadScript  string
	WriteScript string
	// ReadTimeout and WriteTimeout bound a single invocation.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ShellBackend talks to libsettings.sh through a shell process per call.
type ShellBackend struct {
	executor domain.Executor
	cfg      ShellConfig
	read     *fasttemplate.Template
	write    *fasttemplate.Template
}

// NewShellBackend parses the script templates and returns the backend.
func NewShellBackend(executor domain.Executor, cfg ShellConfig) (*ShellBackend, error) {
	if executor == nil {
		return nil, errors.NewConfigError("shell backend requires an executor", nil)
	}
	if cfg.Shell == "" {
		cfg.Shell = "/bin/bash"
	}
	if cfg.ReadScript == "" {
		cfg.ReadScript = DefaultReadScript
	}
	if cfg.WriteScript == "" {
		cfg.WriteScript = DefaultWriteScript
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 5 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}

	read, err := fasttemplate.NewTemplate(cfg.ReadScript, "{{", "}}")
	if err != nil {
		return nil, errors.NewConfigError("invalid read script template", err)
	}
	write, err := fasttemplate.NewTemplate(cfg.WriteScript, "{{", "}}")
	if err != nil {
		return nil, errors.NewConfigError("invalid write script template", err)
	}

	return &ShellBackend{
		executor: executor,
		cfg:      cfg,
		read:     read,
		write:    write,
	}, nil
}

// Name returns "shell".
func (b *ShellBackend) Name() string {
	return "shell"
}

// Get runs the read script and returns its trimmed stdout.
func (b *ShellBackend) Get(ctx context.Context, scope, key string) (string, error) {
	script := b.render(b.read, scope, key, "")

	ctx, cancel := context.WithTimeout(ctx, b.cfg.ReadTimeout)
	defer cancel()

	res, err := b.executor.Run(ctx, b.cfg.Shell, "-c", script)
	if err != nil {
		return "", classify(b.cfg.Shell, err)
	}
	if res.ExitCode != 0 {
		log.Debugf("Reading %s/%s exited with code %d: %s", scope, key, res.ExitCode, strings.TrimSpace(res.Stderr))
		return "", errors.NewBackendError(fmt.Sprintf("reading %s exited with code %d", key, res.ExitCode), nil)
	}

	return strings.TrimSpace(res.Stdout), nil
}

// Set runs the write script with value shell-quoted.
func (b *ShellBackend) Set(ctx context.Context, scope, key, value string) error {
	script := b.render(b.write, scope, key, value)

	ctx, cancel := context.WithTimeout(ctx, b.cfg.WriteTimeout)
	defer cancel()

	res, err := b.executor.Run(ctx, b.cfg.Shell, "-c", script)
	if err != nil {
		return classify(b.cfg.Shell, err)
	}
	if res.ExitCode != 0 {
		log.Debugf("Writing %s/%s exited with code %d: %s", scope, key, res.ExitCode, strings.TrimSpace(res.Stderr))
		return errors.NewBackendError(fmt.Sprintf("writing %s exited with code %d", key, res.ExitCode), nil)
	}

	return nil
}

func (b *ShellBackend) render(t *fasttemplate.Template, scope, key, value string) string {
	return t.ExecuteString(map[string]interface{}{
		TagLibrary: ShellQuote(b.cfg.Library),
		TagScope:   ShellQuote(scope),
		TagKey:     ShellQuote(key),
		TagValue:   ShellQuote(value),
	})
}
