package execution

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"zrep/internal/errors"
)

// Runner executes a test command and exposes its stdout as a stream
type Runner struct {
	// Stderr receives the command's stderr. Defaults to os.Stderr.
	Stderr io.Writer
	// Dir is the working directory. Empty means the current one.
	Dir string
}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{Stderr: os.Stderr}
}

// Process is a started test command
type Process struct {
	cmd *exec.Cmd
	// Stdout streams the command's standard output until it exits.
	Stdout io.Reader
}

// Start launches command. The caller must read Stdout to EOF before Wait.
func (r *Runner) Start(ctx context.Context, command []string) (*Process, error) {
	if len(command) == 0 {
		return nil, errors.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Env = os.Environ()
	cmd.Dir = r.Dir
	cmd.Stderr = r.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", command[0], err)
	}

	return &Process{cmd: cmd, Stdout: stdout}, nil
}

// Wait waits for the command to exit. A non-zero exit is reported as
// ErrTestCommandFailed.
func (p *Process) Wait() error {
	err := p.cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return errors.Wrapf(errors.ErrTestCommandFailed, "exit code %d", exitErr.ExitCode())
	}
	return fmt.Errorf("failed to wait for test command: %w", err)
}
