package backend

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/errors"
)

// DefaultWaitDelay bounds how long Run waits for the output pipes to close
// after the child exited or was killed.
const DefaultWaitDelay = 500 * time.Millisecond

// ProcessExecutor runs commands with os/exec.
//
// The child is placed in its own process group where the platform supports
// it, and the whole group is killed when ctx is done, so a hanging script
// (or something it spawned) cannot keep the call alive past its deadline.
type ProcessExecutor struct {
	// Env is the child environment. Nil inherits the current environment.
	Env []string
	// WaitDelay overrides DefaultWaitDelay when non-zero.
	WaitDelay time.Duration
}

// NewProcessExecutor creates an executor that inherits the current environment.
func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{}
}

// Run starts name with args and waits for it to finish or for ctx to be done.
func (e *ProcessExecutor) Run(ctx context.Context, name string, args ...string) (*domain.CallResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = e.Env
	cmd.WaitDelay = DefaultWaitDelay
	if e.WaitDelay > 0 {
		cmd.WaitDelay = e.WaitDelay
	}
	setProcessGroup(cmd)

	start := time.Now()
	err := cmd.Run()

	result := &domain.CallResult{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, contextError(name, ctxErr)
		}
	}

	switch {
	case err == nil:
		result.ExitCode = 0
		return result, nil
	case stderrors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil:
		// The child exited but something it spawned still holds the pipes.
		result.ExitCode = cmd.ProcessState.ExitCode()
		return result, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return result, errors.NewInternalError(fmt.Sprintf("failed to run %s", name), err)
}

// contextError classifies a finished context as a timeout or a cancellation.
func contextError(name string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(fmt.Sprintf("%s did not finish in time", name), err)
	}
	return errors.NewInternalError(fmt.Sprintf("%s was cancelled", name), err)
}

// classify gives uncoded errors a code. Executors other than ProcessExecutor
// may hand back a bare ctx.Err().
func classify(name string, err error) error {
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		return err
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return contextError(name, err)
	}
	return errors.NewInternalError(fmt.Sprintf("failed to run %s", name), err)
}
