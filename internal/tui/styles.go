package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors the status panel. The canvas keeps the fill styles of the
// session.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Border  lipgloss.Color
}

var (
	ThemeSlate = Theme{
		Name:    "slate",
		Primary: lipgloss.Color("#fffafa"),
		Text:    lipgloss.Color("#e0e0e0"),
		Muted:   lipgloss.Color("#708090"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
		Border:  lipgloss.Color("#2f4f4f"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#00cc00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Border:  lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Border:  lipgloss.Color("#444444"),
	}

	Themes = []Theme{ThemeSlate, ThemeRetro, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to slate.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

type styles struct {
	title, label, value, hint lipgloss.Style
	running, paused, done     lipgloss.Style
	panel                     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		label:   lipgloss.NewStyle().Foreground(t.Muted),
		value:   lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		hint:    lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		running: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		done:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(t.Border),
	}
}

// progressBar draws done/total as a bar width cells wide.
func progressBar(done, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = min(width, max(0, done*width/total))
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// sparkline plots values on a log scale; frontier sizes grow by 3x per
// generation.
func sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	hi := 0.0
	for _, v := range values {
		hi = math.Max(hi, math.Log1p(float64(v)))
	}
	var sb strings.Builder
	for _, v := range values {
		idx := 0
		if hi > 0 {
			idx = int(math.Log1p(float64(v)) / hi * float64(len(chars)-1))
		}
		sb.WriteRune(chars[min(max(idx, 0), len(chars)-1)])
	}
	return sb.String()
}
