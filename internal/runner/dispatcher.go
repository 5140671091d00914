package runner

import (
	"context"
	"log/slog"

	"github.com/dockhand-sh/dockhand/internal/state"
	"github.com/dockhand-sh/dockhand/internal/task"
)

// Dispatcher runs a task's command sequence in order, stopping at the
// first failure, and records the outcome in the state store.
type Dispatcher struct {
	Runner CommandRunner

	// Store is optional; recording failures never block a dispatch.
	Store state.Store

	Logger *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(r CommandRunner, store state.Store, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{Runner: r, Store: store, Logger: logger}
}

// Dispatch executes every command of t in order. The first command that
// exits non-zero stops the sequence and is returned as a
// *task.CommandFailedError carrying its exit code.
func (d *Dispatcher) Dispatch(ctx context.Context, t *task.Task) error {
	run := d.recordStart(t.Name)

	for _, spec := range t.Commands {
		code, err := d.Runner.Run(ctx, spec)
		if err != nil {
			d.recordEnd(run, state.RunStatusFailed, 0, err.Error())
			return err
		}
		if code != 0 {
			failed := &task.CommandFailedError{Task: t.Name, Argv: spec.Argv, ExitCode: code}
			d.recordEnd(run, state.RunStatusFailed, code, failed.Error())
			return failed
		}
	}

	d.recordEnd(run, state.RunStatusCompleted, 0, "")
	return nil
}

func (d *Dispatcher) recordStart(taskName string) *state.TaskRun {
	if d.Store == nil {
		return nil
	}
	run, err := d.Store.CreateRun(taskName)
	if err != nil {
		d.Logger.Warn("failed to record run start", slog.String("task", taskName), slog.Any("error", err))
		return nil
	}
	return run
}

func (d *Dispatcher) recordEnd(run *state.TaskRun, status state.RunStatus, exitCode int, errMsg string) {
	if run == nil || d.Store == nil {
		return
	}
	if err := d.Store.CompleteRun(run.ID, status, exitCode, errMsg); err != nil {
		d.Logger.Warn("failed to record run completion", slog.String("id", run.ID), slog.Any("error", err))
	}
}
