// Package commands implements the dockhand subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dockhand-sh/dockhand/internal/cli/config"
	"github.com/dockhand-sh/dockhand/internal/cli/output"
	"github.com/dockhand-sh/dockhand/internal/state"
	"github.com/dockhand-sh/dockhand/internal/task"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Registry *task.Registry
	Renderer *output.Renderer
}

// NewCommandContext builds the shared dependencies from the loaded config.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	registry, err := task.NewRegistry(cfg.Tasks)
	if err != nil {
		return nil, err
	}

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Registry: registry,
		Renderer: r,
	}, nil
}

// getConfig returns the current configuration, falling back to defaults
// when no config has been loaded (e.g. in isolated command tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	cwd, _ := os.Getwd()
	return &config.Config{
		Container:    config.DefaultContainer,
		DockerBin:    config.DefaultDockerBin,
		StatePath:    config.DefaultStateFile,
		OutputFormat: config.DefaultOutput,
		ProjectRoot:  cwd,
	}
}

// openStore opens the run-history database, creating its directory and
// schema as needed.
func openStore(cfg *config.Config, logger *slog.Logger) (*state.SQLiteStore, error) {
	if dir := filepath.Dir(cfg.StatePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	store := state.NewSQLiteStore(logger)
	if err := store.Open(cfg.StatePath); err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
