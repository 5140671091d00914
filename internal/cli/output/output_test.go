package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"explicit text piped", ModeText, false, ModeText},
		{"explicit json on tty", ModeJSON, true, ModeJSON},
		{"empty mode defaults to auto", "", false, ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			if got := r.EffectiveMode(); got != tt.want {
				t.Errorf("EffectiveMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderer_Header(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeAuto)
	r.Header("Tasks")
	if !strings.HasPrefix(out.String(), "# Tasks") {
		t.Errorf("markdown header should use #, got %q", out.String())
	}

	out.Reset()
	r = NewRendererWithTTY(out, &bytes.Buffer{}, true, ModeAuto)
	r.Header("Tasks")
	if !strings.Contains(out.String(), "Tasks") {
		t.Errorf("text header should contain title, got %q", out.String())
	}
}

func TestRenderer_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	if err := r.JSON(map[string]int{"runs": 3}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["runs"] != 3 {
		t.Errorf("runs = %d, want 3", decoded["runs"])
	}
}

func TestStyles_NonTTYIsPlain(t *testing.T) {
	styles := NewStyles(false)
	if got := styles.Error.Render("failed"); got != "failed" {
		t.Errorf("non-TTY style should not decorate, got %q", got)
	}
	if got := styles.StatusStyle("completed").Render("completed"); got != "completed" {
		t.Errorf("non-TTY status style should not decorate, got %q", got)
	}
}
