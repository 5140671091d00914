// Package task defines the task table for dockhand: named, fixed command
// sequences that run either inside a Docker container or on the host.
package task

import "fmt"

// Target identifies where a command executes.
type Target string

const (
	// TargetContainer runs the command inside the configured container.
	TargetContainer Target = "container"
	// TargetLocal runs the command directly on the host.
	TargetLocal Target = "local"
)

// CommandSpec is a single command within a task.
type CommandSpec struct {
	// Target selects container or local execution.
	Target Target `koanf:"target" yaml:"target"`

	// Argv is the command and its arguments, executed without a shell.
	Argv []string `koanf:"argv" yaml:"argv"`

	// Interactive attaches the controlling terminal (stdin plus a TTY).
	// Required for shells and the dev server, never for batch commands.
	Interactive bool `koanf:"interactive" yaml:"interactive,omitempty"`

	// StdoutFile, when set, truncates the named file and writes the
	// command's standard output into it. Standard error is never
	// redirected.
	StdoutFile string `koanf:"stdout_file" yaml:"stdout_file,omitempty"`
}

// Task is a named sequence of commands invocable by mnemonic.
type Task struct {
	Name     string        `koanf:"name" yaml:"name"`
	Summary  string        `koanf:"summary" yaml:"summary,omitempty"`
	Commands []CommandSpec `koanf:"commands" yaml:"commands"`

	// Builtin marks tasks from the static table, as opposed to tasks
	// loaded from dockhand.yaml.
	Builtin bool `koanf:"-" yaml:"-"`
}

// Interactive reports whether any command in the task needs a terminal.
func (t *Task) Interactive() bool {
	for _, c := range t.Commands {
		if c.Interactive {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of a single task.
func (t *Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task has no name")
	}
	if len(t.Commands) == 0 {
		return fmt.Errorf("task %q has no commands", t.Name)
	}
	for i, c := range t.Commands {
		switch c.Target {
		case TargetContainer, TargetLocal:
		default:
			return fmt.Errorf("task %q command %d: unknown target %q", t.Name, i, c.Target)
		}
		if len(c.Argv) == 0 {
			return fmt.Errorf("task %q command %d: empty argv", t.Name, i)
		}
	}
	return nil
}
