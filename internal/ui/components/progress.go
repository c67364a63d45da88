package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/ui/theme"
)

// ProgressBar shows how close a locked badge is to unlocking, as a
// labelled horizontal bar with the percentage after it.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// NewProgressBar builds a bar. percent outside [0,1] is clamped.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width}
}

func (p ProgressBar) View() string {
	percent := p.Percent
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}

	var prefix string
	if p.Label != "" {
		prefix = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	suffix := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(percent*100)))

	track := p.Width - lipgloss.Width(prefix) - 6
	if track < 4 {
		track = 4
	}
	filled := int(float64(track) * percent)

	return prefix +
		lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", track-filled)) +
		suffix
}
