// Package state records task run history in a SQLite database.
package state

import "time"

// RunStatus is the lifecycle state of a recorded task run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// TaskRun is one recorded dispatch of a task.
type TaskRun struct {
	ID          string
	Task        string
	Status      RunStatus
	ExitCode    int
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Duration returns the wall time of a completed run, or zero.
func (r *TaskRun) Duration() time.Duration {
	if r.CompletedAt == nil {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// Store persists task run history.
type Store interface {
	// CreateRun records the start of a task dispatch.
	CreateRun(taskName string) (*TaskRun, error)

	// CompleteRun marks a run finished with the given status, exit code,
	// and error message (empty on success).
	CompleteRun(id string, status RunStatus, exitCode int, errMsg string) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]*TaskRun, error)

	Close() error
}
