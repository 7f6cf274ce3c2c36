// Package proc implements the process launcher over os/exec.
package proc

import (
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Launcher = (*Launcher)(nil)

// Launcher implements ports.Launcher using os/exec. Each spawned process
// gets a goroutine that waits for it and publishes the exit code, so
// TryWait stays a non-blocking channel probe and the scheduler's polling
// loop remains platform independent.
type Launcher struct{}

// NewLauncher creates a new Launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Spawn starts argv as an OS process. The child inherits the
// orchestrator's stdout and stderr; output is not captured or redirected.
func (l *Launcher) Spawn(argv []string) (ports.Process, error) {
	if len(argv) == 0 {
		return nil, zerr.With(domain.ErrLaunchFailed, "cause", "empty argument vector")
	}

	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // argv is assembled from the manifest
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		failure := zerr.With(domain.ErrLaunchFailed, "cause", err.Error())
		return nil, zerr.With(failure, "command", strings.Join(argv, " "))
	}

	p := &process{done: make(chan struct{})}
	go func() {
		p.code, p.waitErr = exitCode(cmd.Wait())
		close(p.done)
	}()
	return p, nil
}

// process is a handle to one running child.
type process struct {
	done    chan struct{}
	code    int
	waitErr error
}

// TryWait polls the child without blocking.
func (p *process) TryWait() (int, bool, error) {
	select {
	case <-p.done:
		return p.code, true, p.waitErr
	default:
		return 0, false, nil
	}
}

// Wait blocks until the child exits.
func (p *process) Wait() (int, error) {
	<-p.done
	return p.code, p.waitErr
}

// exitCode maps a cmd.Wait result to an exit code. A signal-terminated
// child reports -1, same as exec.ExitError does.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.Wrap(err, "failed to wait for process")
}
