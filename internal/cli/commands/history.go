package commands

import (
	"time"

	"github.com/dockhand-sh/dockhand/internal/cli/output"
	"github.com/dockhand-sh/dockhand/internal/state"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent task runs",
		Long:  `Show the most recent task runs recorded in the state database, newest first.`,
		Example: `  # Show the last 20 runs
  dockhand history

  # Show the last 5 runs as JSON
  dockhand history --limit 5 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum number of runs to show")

	return cmd
}

// runRow is the JSON shape of one recorded run.
type runRow struct {
	ID        string     `json:"id"`
	Task      string     `json:"task"`
	Status    string     `json:"status"`
	ExitCode  int        `json:"exit_code"`
	Error     string     `json:"error,omitempty"`
	StartedAt time.Time  `json:"started_at"`
	Duration  string     `json:"duration,omitempty"`
	EndedAt   *time.Time `json:"completed_at,omitempty"`
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	store, err := openStore(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(opts.Limit)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		rows := make([]runRow, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, newRunRow(run))
		}
		return r.JSON(rows)
	}

	if len(runs) == 0 {
		r.Println("No runs recorded yet.")
		return nil
	}

	styles := r.Styles()
	tw := table.NewWriter()
	tw.SetOutputMirror(r.Writer())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Task", "Status", "Exit", "Started", "Duration"})
	for _, run := range runs {
		duration := ""
		if d := run.Duration(); d > 0 {
			duration = d.Round(time.Millisecond).String()
		}
		tw.AppendRow(table.Row{
			run.Task,
			styles.StatusStyle(string(run.Status)).Render(string(run.Status)),
			run.ExitCode,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
		})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		tw.RenderMarkdown()
	} else {
		tw.Render()
	}
	return nil
}

func newRunRow(run *state.TaskRun) runRow {
	row := runRow{
		ID:        run.ID,
		Task:      run.Task,
		Status:    string(run.Status),
		ExitCode:  run.ExitCode,
		Error:     run.Error,
		StartedAt: run.StartedAt,
		EndedAt:   run.CompletedAt,
	}
	if d := run.Duration(); d > 0 {
		row.Duration = d.Round(time.Millisecond).String()
	}
	return row
}
