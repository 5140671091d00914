package commands

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spf13/cobra"
)

// statusCheckTimeout bounds each docker invocation so a wedged daemon
// cannot hang the status command.
const statusCheckTimeout = 10 * time.Second

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the Docker runtime and the configured container",
		Long: `Verify that the container runtime binary is available and that the
configured container is running. The checks run concurrently.`,
		Example: `  dockhand status`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd)
		},
	}
}

func runStatus(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	styles := r.Styles()

	ctx, cancel := context.WithTimeout(cmd.Context(), statusCheckTimeout)
	defer cancel()

	var dockerVersion string
	var containerRunning bool

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := exec.CommandContext(ctx, cfg.DockerBin, "version", "--format", "{{.Client.Version}}").Output()
		if err != nil {
			return fmt.Errorf("container runtime %q not available: %w", cfg.DockerBin, err)
		}
		dockerVersion = strings.TrimSpace(string(out))
		return nil
	})

	g.Go(func() error {
		var out bytes.Buffer
		inspect := exec.CommandContext(ctx, cfg.DockerBin, "inspect", "--format", "{{.State.Running}}", cfg.Container)
		inspect.Stdout = &out
		if err := inspect.Run(); err != nil {
			return fmt.Errorf("container %q not found: %w", cfg.Container, err)
		}
		containerRunning = strings.TrimSpace(out.String()) == "true"
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	r.Printf("%s %s (%s)\n", styles.Success.Render("ok"), "container runtime", dockerVersion)
	if !containerRunning {
		return fmt.Errorf("container %q exists but is not running", cfg.Container)
	}
	r.Printf("%s container %q is running\n", styles.Success.Render("ok"), cfg.Container)

	return nil
}
