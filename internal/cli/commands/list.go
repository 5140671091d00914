package commands

import (
	"strings"

	"github.com/dockhand-sh/dockhand/internal/cli/output"
	"github.com/dockhand-sh/dockhand/internal/task"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long: `List every task with its target, interactivity, and commands.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: markdown table

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all tasks
  dockhand list

  # List tasks as JSON
  dockhand list --output json`,
		Aliases: []string{"tasks"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

// taskRow is the JSON shape of one listed task.
type taskRow struct {
	Name        string   `json:"name"`
	Summary     string   `json:"summary,omitempty"`
	Target      string   `json:"target"`
	Interactive bool     `json:"interactive"`
	Commands    []string `json:"commands"`
	Builtin     bool     `json:"builtin"`
}

func runList(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	rows := make([]taskRow, 0, cmdCtx.Registry.Len())
	for _, t := range cmdCtx.Registry.All() {
		rows = append(rows, newTaskRow(t))
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(rows)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(r.Writer())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Task", "Target", "Interactive", "Commands"})
	for _, row := range rows {
		interactive := ""
		if row.Interactive {
			interactive = "yes"
		}
		tw.AppendRow(table.Row{row.Name, row.Target, interactive, strings.Join(row.Commands, "; ")})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		tw.RenderMarkdown()
	} else {
		tw.Render()
	}
	return nil
}

func newTaskRow(t *task.Task) taskRow {
	row := taskRow{
		Name:        t.Name,
		Summary:     t.Summary,
		Interactive: t.Interactive(),
		Builtin:     t.Builtin,
	}

	target := ""
	for _, c := range t.Commands {
		if target == "" {
			target = string(c.Target)
		} else if target != string(c.Target) {
			target = "mixed"
		}
		cmdStr := strings.Join(c.Argv, " ")
		if c.StdoutFile != "" {
			cmdStr += " > " + c.StdoutFile
		}
		row.Commands = append(row.Commands, cmdStr)
	}
	row.Target = target

	return row
}
