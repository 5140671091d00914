package task

import (
	"fmt"
	"sort"
)

// manage builds the argv for a manage.py subcommand.
func manage(args ...string) []string {
	return append([]string{"python", "manage.py"}, args...)
}

// builtins is the static task table. It is constructed once and never
// mutated; Registry hands out copies only.
var builtins = []Task{
	{
		Name:    "mmm",
		Summary: "Make migrations, then migrate",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("makemigrations")},
			{Target: TargetContainer, Argv: manage("migrate")},
		},
	},
	{
		Name:    "mm",
		Summary: "Make migrations",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("makemigrations")},
		},
	},
	{
		Name:    "m",
		Summary: "Apply migrations",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("migrate")},
		},
	},
	{
		Name:    "shell",
		Summary: "Open a Django shell",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("shell"), Interactive: true},
		},
	},
	{
		Name:    "shell_plus",
		Summary: "Open a shell_plus session",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("shell_plus"), Interactive: true},
		},
	},
	{
		Name:    "runserver",
		Summary: "Run the development server on 0.0.0.0:8000",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("runserver", "0.0.0.0:8000"), Interactive: true},
		},
	},
	{
		Name:    "test",
		Summary: "Run the Django test suite",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("test")},
		},
	},
	{
		Name:    "showmigrations",
		Summary: "Show migration status",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("showmigrations")},
		},
	},
	{
		Name:    "createsuperuser",
		Summary: "Create a Django superuser",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: manage("createsuperuser"), Interactive: true},
		},
	},
	{
		Name:    "pytest_unit",
		Summary: "Run the pytest unit suite",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetContainer, Argv: []string{"pytest", "tests/unit"}},
		},
	},
	{
		Name:    "uv_export",
		Summary: "Export dependency locks to requirements.txt",
		Builtin: true,
		Commands: []CommandSpec{
			{Target: TargetLocal, Argv: []string{"uv", "export", "--no-hashes"}, StdoutFile: "requirements.txt"},
		},
	},
}

// Registry is the immutable task table: the builtin tasks plus any tasks
// loaded from dockhand.yaml. Built once at startup, never mutated after.
type Registry struct {
	tasks map[string]*Task
	names []string
}

// NewRegistry builds a registry from the builtin table and the given user
// tasks. User tasks are validated and may not shadow a builtin name.
func NewRegistry(userTasks []Task) (*Registry, error) {
	r := &Registry{tasks: make(map[string]*Task, len(builtins)+len(userTasks))}

	for i := range builtins {
		t := builtins[i]
		r.tasks[t.Name] = &t
	}

	for i := range userTasks {
		t := userTasks[i]
		t.Builtin = false
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("invalid task definition: %w", err)
		}
		if existing, ok := r.tasks[t.Name]; ok {
			if existing.Builtin {
				return nil, fmt.Errorf("task %q shadows a builtin task", t.Name)
			}
			return nil, fmt.Errorf("duplicate task %q", t.Name)
		}
		r.tasks[t.Name] = &t
	}

	r.names = make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	return r, nil
}

// Lookup returns the named task, or an UnknownTaskError.
func (r *Registry) Lookup(name string) (*Task, error) {
	t, ok := r.tasks[name]
	if !ok {
		return nil, &UnknownTaskError{Name: name, Known: r.names}
	}
	// Copy so callers cannot mutate the table.
	cp := *t
	cp.Commands = make([]CommandSpec, len(t.Commands))
	for i, c := range t.Commands {
		c.Argv = append([]string(nil), c.Argv...)
		cp.Commands[i] = c
	}
	return &cp, nil
}

// Names returns all task names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// All returns every task in name order.
func (r *Registry) All() []*Task {
	out := make([]*Task, 0, len(r.names))
	for _, name := range r.names {
		t, _ := r.Lookup(name)
		out = append(out, t)
	}
	return out
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}
