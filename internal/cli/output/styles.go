package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands. On non-TTY
// output the styles are plain so piped output stays clean.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates the style set. Colors apply only on a terminal.
func NewStyles(isTTY bool) *Styles {
	if !isTTY {
		plain := lipgloss.NewStyle()
		return &Styles{Header: plain, Success: plain, Error: plain, Warning: plain, Muted: plain}
	}
	return &Styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// StatusStyle returns the style for a run status word.
func (s *Styles) StatusStyle(status string) lipgloss.Style {
	switch status {
	case "completed":
		return s.Success
	case "failed":
		return s.Error
	case "running":
		return s.Warning
	default:
		return s.Muted
	}
}
