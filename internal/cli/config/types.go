// Package config provides configuration management for the dockhand CLI.
//
// Configuration is layered: defaults, then dockhand.yaml, then DOCKHAND_*
// environment variables, then command-line flags.
package config

import "github.com/dockhand-sh/dockhand/internal/task"

// Config holds all CLI configuration options.
type Config struct {
	// Container is the name of the container that container-target
	// commands exec into.
	Container string `koanf:"container"`

	// DockerBin is the container runtime binary.
	DockerBin string `koanf:"docker_bin"`

	// StatePath is the run-history SQLite database.
	StatePath string `koanf:"state_path"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`

	// Tasks are user-defined tasks merged over the builtin table.
	Tasks []task.Task `koanf:"tasks"`

	// ProjectRoot is the directory the config file was found in, or the
	// working directory. Relative paths resolve against it.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultContainer = "ecommerce_api"
	DefaultDockerBin = "docker"
	DefaultStateFile = ".dockhand/state.db"
	DefaultOutput    = "auto" // TTY=text, non-TTY=markdown
)
