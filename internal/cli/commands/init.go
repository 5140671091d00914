package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dockhand-sh/dockhand/internal/cli/config"
	"github.com/dockhand-sh/dockhand/internal/task"
	"github.com/spf13/cobra"
)

// initFileName is the config file written by init.
const initFileName = "dockhand.yaml"

// starterConfig is the scaffold written by `dockhand init`.
type starterConfig struct {
	Container string      `yaml:"container"`
	StatePath string      `yaml:"state_path"`
	Tasks     []task.Task `yaml:"tasks"`
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter dockhand.yaml",
		Long: `Write a starter dockhand.yaml into the current directory with the
default container name and an example user-defined task.`,
		Example: `  dockhand init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd)
		},
	}
}

func runInit(cmd *cobra.Command) error {
	if _, err := os.Stat(initFileName); err == nil {
		return fmt.Errorf("%s already exists", initFileName)
	}

	starter := starterConfig{
		Container: config.DefaultContainer,
		StatePath: config.DefaultStateFile,
		Tasks: []task.Task{
			{
				Name:    "logs",
				Summary: "Tail the application log",
				Commands: []task.CommandSpec{
					{
						Target:      task.TargetContainer,
						Argv:        []string{"tail", "-f", "/var/log/app.log"},
						Interactive: true,
					},
				},
			},
		},
	}

	data, err := yaml.Marshal(&starter)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if err := os.WriteFile(initFileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", initFileName, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", initFileName)
	return nil
}
