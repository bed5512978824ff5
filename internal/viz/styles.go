package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of the live view, derived from a Theme.
type Styles struct {
	Header        lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	ActiveParam   lipgloss.Style
	Graph         lipgloss.Style
	Help          lipgloss.Style
	StatusRunning lipgloss.Style
	StatusPaused  lipgloss.Style
	Canvas        lipgloss.Style
	Stats         lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Header:        lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		Label:         lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		Value:         lipgloss.NewStyle().Foreground(t.Text),
		ActiveParam:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Graph:         lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		Help:          lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		StatusRunning: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		StatusPaused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Canvas:        lipgloss.NewStyle().Foreground(t.Text).Padding(1, 2),
		Stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(46),
	}
}

// ProgressBar renders a slider position as a filled bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// Separator is a thin rule with a centre mark.
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return left + " ◆ " + right
}
