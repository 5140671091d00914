package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_JSON(t *testing.T) {
	loadTestConfig(t, "", "--output", "json")

	out, _, err := execute(t, NewListCommand())
	require.NoError(t, err)

	var rows []taskRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 11, "builtin table has 11 tasks")

	byName := make(map[string]taskRow, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}

	mmm := byName["mmm"]
	assert.Equal(t, "container", mmm.Target)
	assert.False(t, mmm.Interactive)
	assert.Equal(t, []string{
		"python manage.py makemigrations",
		"python manage.py migrate",
	}, mmm.Commands)
	assert.True(t, mmm.Builtin)

	shell := byName["shell"]
	assert.True(t, shell.Interactive)

	uvExport := byName["uv_export"]
	assert.Equal(t, "local", uvExport.Target)
	assert.Equal(t, []string{"uv export --no-hashes > requirements.txt"}, uvExport.Commands)
}

func TestListCommand_IncludesUserTasks(t *testing.T) {
	loadTestConfig(t, `tasks:
  - name: logs
    summary: Tail logs
    commands:
      - target: container
        argv: [tail, -f, /var/log/app.log]
`, "--output", "json")

	out, _, err := execute(t, NewListCommand())
	require.NoError(t, err)

	var rows []taskRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 12)

	var found bool
	for _, row := range rows {
		if row.Name == "logs" {
			found = true
			assert.False(t, row.Builtin)
		}
	}
	assert.True(t, found, "user task should be listed")
}

func TestListCommand_Markdown(t *testing.T) {
	loadTestConfig(t, "", "--output", "markdown")

	out, _, err := execute(t, NewListCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "| Task |")
	assert.Contains(t, out, "mmm")
	assert.Contains(t, out, "uv_export")
}
