// Package runner executes task commands against a Docker container or the
// host, and dispatches task command sequences fail-fast.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/dockhand-sh/dockhand/internal/task"
)

// CommandRunner executes one command spec and returns its exit code.
// An error is returned only when the command could not be run at all;
// a non-zero exit from the command itself is reported via the code.
type CommandRunner interface {
	Run(ctx context.Context, spec task.CommandSpec) (int, error)
}

// ExecRunner runs commands via os/exec, wrapping container targets in
// `docker exec`.
type ExecRunner struct {
	// DockerBin is the container runtime binary, normally "docker".
	DockerBin string

	// Container is the name passed to `docker exec` for container targets.
	Container string

	// Dir is the working directory for local commands.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *slog.Logger
}

// NewExecRunner creates an ExecRunner wired to the process's standard
// streams.
func NewExecRunner(dockerBin, container string, logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExecRunner{
		DockerBin: dockerBin,
		Container: container,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Logger:    logger,
	}
}

// Argv resolves a command spec into the full argv to execute on the host.
// Container targets require a non-empty container name.
func (r *ExecRunner) Argv(spec task.CommandSpec) ([]string, error) {
	switch spec.Target {
	case task.TargetContainer:
		if r.Container == "" {
			return nil, fmt.Errorf("no container configured for container command %q",
				strings.Join(spec.Argv, " "))
		}
		argv := []string{r.DockerBin, "exec"}
		if spec.Interactive {
			argv = append(argv, "-it")
		}
		argv = append(argv, r.Container)
		return append(argv, spec.Argv...), nil
	case task.TargetLocal:
		return append([]string(nil), spec.Argv...), nil
	default:
		return nil, fmt.Errorf("unknown command target %q", spec.Target)
	}
}

// Run executes the spec and returns its exit code.
func (r *ExecRunner) Run(ctx context.Context, spec task.CommandSpec) (int, error) {
	argv, err := r.Argv(spec)
	if err != nil {
		return 0, err
	}

	r.Logger.Debug("executing command",
		slog.String("argv", strings.Join(argv, " ")),
		slog.Bool("interactive", spec.Interactive))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Stderr = r.Stderr

	if spec.Interactive {
		// The wrapped process owns the terminal for shells and the dev
		// server; docker exec -it needs a real stdin.
		cmd.Stdin = r.Stdin
	}

	var out *os.File
	if spec.StdoutFile != "" {
		out, err = os.Create(spec.StdoutFile)
		if err != nil {
			return 0, fmt.Errorf("failed to open %s: %w", spec.StdoutFile, err)
		}
		cmd.Stdout = out
	} else {
		cmd.Stdout = r.Stdout
	}

	runErr := cmd.Run()

	if out != nil {
		if closeErr := out.Close(); closeErr != nil && runErr == nil {
			return 0, fmt.Errorf("failed to write %s: %w", spec.StdoutFile, closeErr)
		}
	}

	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return exitCodeOf(exitErr), nil
		}
		return 0, fmt.Errorf("failed to execute %q: %w", argv[0], runErr)
	}

	return 0, nil
}

// exitCodeOf extracts the exit code, mapping signal deaths to 128+signal
// the way shells report them.
func exitCodeOf(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return err.ExitCode()
}
