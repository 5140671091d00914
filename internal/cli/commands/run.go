package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dockhand-sh/dockhand/internal/runner"
	"github.com/dockhand-sh/dockhand/internal/state"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Watch bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <task>",
		Short: "Run a named task",
		Long: `Execute a task's command sequence in order.

Container commands exec into the configured container; local commands run
on the host. The sequence stops at the first failing command and its exit
code becomes dockhand's exit code.`,
		Example: `  # Make migrations and migrate
  dockhand run mmm

  # Re-run the test suite whenever a file changes
  dockhand run test --watch

  # The run keyword is optional for dispatch
  dockhand mmm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTask(cmd, args[0], opts)
		},
		ValidArgsFunction: completeTaskNames,
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the task when project files change")

	return cmd
}

// RunTask dispatches the named task. It is shared between `dockhand run
// <task>` and the bare `dockhand <task>` form.
func RunTask(cmd *cobra.Command, name string, opts *RunOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	t, err := cmdCtx.Registry.Lookup(name)
	if err != nil {
		return err
	}

	if opts.Watch && t.Interactive() {
		return fmt.Errorf("task %q is interactive and cannot be watched", t.Name)
	}

	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	// Run history is best effort: a broken state db must not stop a
	// dispatch.
	var store state.Store
	if s, err := openStore(cfg, logger); err != nil {
		logger.Warn("run history disabled", slog.Any("error", err))
	} else {
		store = s
		defer s.Close()
	}

	execRunner := runner.NewExecRunner(cfg.DockerBin, cfg.Container, logger)
	execRunner.Stdout = cmd.OutOrStdout()
	execRunner.Stderr = cmd.ErrOrStderr()
	dispatcher := runner.NewDispatcher(execRunner, store, logger)

	ctx := cmd.Context()
	if !opts.Watch {
		return dispatcher.Dispatch(ctx, t)
	}

	return runWatched(ctx, cmdCtx, dispatcher, t.Name)
}

// runWatched dispatches once, then re-dispatches on file changes until
// interrupted. Failures of the watched task are reported, not fatal.
func runWatched(ctx context.Context, cmdCtx *CommandContext, d *runner.Dispatcher, name string) error {
	r := cmdCtx.Renderer

	dispatch := func(ctx context.Context) {
		t, err := cmdCtx.Registry.Lookup(name)
		if err != nil {
			r.Println(r.Styles().Error.Render(err.Error()))
			return
		}
		start := time.Now()
		if err := d.Dispatch(ctx, t); err != nil {
			r.Println(r.Styles().Error.Render(fmt.Sprintf("%s failed: %v", name, err)))
			return
		}
		r.Printf("%s %s\n", r.Styles().Success.Render(name+" ok"), time.Since(start).Round(time.Millisecond))
	}

	dispatch(ctx)
	r.Printf("Watching %s for changes (Ctrl-C to stop)...\n", cmdCtx.Cfg.ProjectRoot)

	w := runner.NewWatcher(cmdCtx.Cfg.ProjectRoot, cmdCtx.Logger)
	err := w.Watch(ctx, dispatch)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// completeTaskNames provides shell completion for task name arguments.
func completeTaskNames(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return cmdCtx.Registry.Names(), cobra.ShellCompDirectiveNoFileComp
}
