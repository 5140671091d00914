package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("container", "c", "", "")
	flags.String("docker-bin", "", "")
	flags.String("state", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.StringP("output", "o", "", "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	ResetConfig()

	cfg, err := LoadConfig("", newTestFlags())
	require.NoError(t, err)

	assert.Equal(t, DefaultContainer, cfg.Container)
	assert.Equal(t, DefaultDockerBin, cfg.DockerBin)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Tasks)
	assert.True(t, filepath.IsAbs(cfg.StatePath), "state path should be resolved to absolute")
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, DefaultStateFile), cfg.StatePath)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	ResetConfig()

	content := `container: blog_api
docker_bin: podman
state_path: .cache/runs.db
tasks:
  - name: logs
    summary: Tail logs
    commands:
      - target: container
        argv: [tail, -f, /var/log/app.log]
        interactive: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dockhand.yaml"), []byte(content), 0644))

	cfg, err := LoadConfig("", newTestFlags())
	require.NoError(t, err)

	assert.Equal(t, "blog_api", cfg.Container)
	assert.Equal(t, "podman", cfg.DockerBin)
	require.Len(t, cfg.Tasks, 1)
	assert.Equal(t, "logs", cfg.Tasks[0].Name)
	require.Len(t, cfg.Tasks[0].Commands, 1)
	assert.Equal(t, []string{"tail", "-f", "/var/log/app.log"}, cfg.Tasks[0].Commands[0].Argv)
	assert.True(t, cfg.Tasks[0].Commands[0].Interactive)
	assert.NotEmpty(t, GetConfigFileUsed())
}

func TestLoadConfig_UpwardSearch(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dockhand.yml"), []byte("container: found_api\n"), 0644))
	t.Chdir(nested)
	ResetConfig()

	cfg, err := LoadConfig("", newTestFlags())
	require.NoError(t, err)
	assert.Equal(t, "found_api", cfg.Container)

	// Paths resolve against the directory the config was found in.
	resolvedRoot, err := filepath.EvalSymlinks(cfg.ProjectRoot)
	require.NoError(t, err)
	expectedRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, expectedRoot, resolvedRoot)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	ResetConfig()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dockhand.yaml"), []byte("container: from_file\n"), 0644))
	t.Setenv("DOCKHAND_CONTAINER", "from_env")

	cfg, err := LoadConfig("", newTestFlags())
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Container)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	ResetConfig()
	t.Setenv("DOCKHAND_CONTAINER", "from_env")

	flags := newTestFlags()
	require.NoError(t, flags.Parse([]string{"--container", "from_flag", "--state", "custom/state.db", "--verbose"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "from_flag", cfg.Container)
	assert.True(t, cfg.Verbose)
	// --state maps to state_path and resolves against the project root.
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, "custom", "state.db"), cfg.StatePath)
}

func TestLoadConfig_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "elsewhere")
	require.NoError(t, os.MkdirAll(other, 0755))
	cfgPath := filepath.Join(other, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("container: explicit_api\n"), 0644))
	t.Chdir(dir)
	ResetConfig()

	cfg, err := LoadConfig(cfgPath, newTestFlags())
	require.NoError(t, err)
	assert.Equal(t, "explicit_api", cfg.Container)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_InvalidOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	ResetConfig()

	flags := newTestFlags()
	require.NoError(t, flags.Parse([]string{"--output", "xml"}))

	_, err := LoadConfig("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestLoadConfig_InvalidTask(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	ResetConfig()

	content := `tasks:
  - name: broken
    commands: []
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dockhand.yaml"), []byte(content), 0644))

	_, err := LoadConfig("", newTestFlags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task")
}

func TestValidate_EmptyDockerBin(t *testing.T) {
	err := Validate(&Config{DockerBin: ""})
	require.Error(t, err)
}
