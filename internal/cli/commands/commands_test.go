package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/dockhand-sh/dockhand/internal/cli/config"
)

// loadTestConfig chdirs into a fresh project dir, writes an optional
// dockhand.yaml, and loads config with the given CLI arguments.
func loadTestConfig(t *testing.T, yamlContent string, args ...string) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	if yamlContent != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dockhand.yaml"), []byte(yamlContent), 0644))
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("container", "c", "", "")
	flags.String("docker-bin", "", "")
	flags.String("state", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.StringP("output", "o", "", "")
	require.NoError(t, flags.Parse(args))

	_, err := config.LoadConfig("", flags)
	require.NoError(t, err)

	return dir
}

// execute runs a command with captured output buffers.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
