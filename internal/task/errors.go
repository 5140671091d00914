package task

import (
	"fmt"
	"strings"
)

// UnknownTaskError is returned when the requested task is not in the table.
type UnknownTaskError struct {
	Name  string
	Known []string
}

func (e *UnknownTaskError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown task %q", e.Name)
	}
	return fmt.Sprintf("unknown task %q (known tasks: %s)", e.Name, strings.Join(e.Known, ", "))
}

// CommandFailedError wraps a non-zero exit from a container or local command.
type CommandFailedError struct {
	Task     string
	Argv     []string
	ExitCode int
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("task %q: command %q exited with code %d",
		e.Task, strings.Join(e.Argv, " "), e.ExitCode)
}
