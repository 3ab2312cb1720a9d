// Package restart asks the host's process supervisor to restart a service.
package restart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
	"github.com/disk2iso/disk2iso-web/src/internal/metrics"
)

// TagService is substituted with the service name in every command argument.
const TagService = "service"

// DefaultTimeout bounds a single restart request.
const DefaultTimeout = 10 * time.Second

// DefaultCommand restarts a systemd unit.
var DefaultCommand = []string{"/usr/bin/systemctl", "restart", "{{service}}"}

// Trigger runs the restart command. A request is a single attempt; a
// refused or timed out request is reported, not retried.
type Trigger struct {
	executor domain.Executor
	command  []*fasttemplate.Template
	timeout  time.Duration
	metrics  *metrics.Metrics
}

// NewTrigger parses command. An empty command selects DefaultCommand and a
// non-positive timeout selects DefaultTimeout. m may be nil.
func NewTrigger(executor domain.Executor, command []string, timeout time.Duration, m *metrics.Metrics) (*Trigger, error) {
	if executor == nil {
		return nil, errors.NewConfigError("restart trigger requires an executor", nil)
	}
	if len(command) == 0 {
		command = DefaultCommand
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	templates := make([]*fasttemplate.Template, 0, len(command))
	for i, arg := range command {
		t, err := fasttemplate.NewTemplate(arg, "{{", "}}")
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("invalid restart command argument #%d", i), err)
		}
		templates = append(templates, t)
	}

	return &Trigger{
		executor: executor,
		command:  templates,
		timeout:  timeout,
		metrics:  m,
	}, nil
}

// Restart reports whether the supervisor accepted the request for service.
// It never panics and never returns an error; failures are logged.
func (t *Trigger) Restart(ctx context.Context, service string) (accepted bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Panic while restarting %s: %v", service, r)
			accepted = false
		}
		t.metrics.ObserveRestart(service, accepted)
	}()

	if service == "" {
		log.Warnf("Restart requested without a service name")
		return false
	}

	argv := t.Command(service)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	log.Infof("Restarting service %s", service)
	res, err := t.executor.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		log.Warnf("Failed to restart %s: %v", service, err)
		return false
	}
	if res.ExitCode != 0 {
		log.Warnf("Failed to restart %s: %s exited with code %d: %s",
			service, argv[0], res.ExitCode, strings.TrimSpace(res.Stderr))
		return false
	}

	log.Debugf("Restart of %s accepted in %v", service, res.Duration)
	return true
}

// Command renders the argv used to restart service.
func (t *Trigger) Command(service string) []string {
	argv := make([]string, len(t.command))
	for i, tpl := range t.command {
		argv[i] = tpl.ExecuteString(map[string]interface{}{TagService: service})
	}
	return argv
}
