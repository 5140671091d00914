package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dockhand-sh/dockhand/internal/task"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{
			"command failure propagates exit code",
			&task.CommandFailedError{Task: "test", Argv: []string{"python", "manage.py", "test"}, ExitCode: 4},
			4,
		},
		{
			"wrapped command failure",
			fmt.Errorf("dispatch: %w", &task.CommandFailedError{Task: "m", ExitCode: 9}),
			9,
		},
		{
			"unknown task is a distinct sentinel",
			&task.UnknownTaskError{Name: "deploy"},
			2,
		},
		{"generic error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
