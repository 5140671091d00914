package cli

import (
	"errors"

	"github.com/dockhand-sh/dockhand/internal/task"
)

// Exit code for a task name not present in the table.
const exitUnknownTask = 2

// ExitCode maps a command error to the process exit code: a failed
// command propagates its own exit code, an unknown task exits 2, and
// anything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var failed *task.CommandFailedError
	if errors.As(err, &failed) {
		return failed.ExitCode
	}

	var unknown *task.UnknownTaskError
	if errors.As(err, &unknown) {
		return exitUnknownTask
	}

	return 1
}
