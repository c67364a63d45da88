// Package rewards shows the badge gallery and the score history chart.
package rewards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/badges"
	"github.com/lamila/fundabuddy/internal/progress"
	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
	"github.com/lamila/fundabuddy/internal/session"
	"github.com/lamila/fundabuddy/internal/ui/components"
	"github.com/lamila/fundabuddy/internal/ui/layout"
	"github.com/lamila/fundabuddy/internal/ui/theme"
)

const chartHeight = 6

// RewardsScreen displays earned badges and the score history series.
type RewardsScreen struct {
	ctrl *session.Controller
}

var _ screen.Screen = (*RewardsScreen)(nil)
var _ screen.KeyHintProvider = (*RewardsScreen)(nil)

// New creates a RewardsScreen reading from the given controller.
func New(ctrl *session.Controller) *RewardsScreen {
	return &RewardsScreen{ctrl: ctrl}
}

func (r *RewardsScreen) Init() tea.Cmd {
	return nil
}

func (r *RewardsScreen) Title() string {
	return "My Rewards"
}

func (r *RewardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RewardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *RewardsScreen) View(width, height int) string {
	stats := r.ctrl.Stats()

	var b strings.Builder
	b.WriteString("\n")

	// Totals line.
	totals := fmt.Sprintf("★ %d points   🔥 %d streak   %d answered",
		stats.Score, stats.Streak, stats.QuestionsAnswered)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(totals)))
	b.WriteString("\n\n")

	// Badge gallery: every defined badge, dimmed until unlocked.
	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Badges")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, heading))
	b.WriteString("\n")

	unlocked := make(map[string]bool, len(stats.Badges))
	for _, id := range stats.Badges {
		unlocked[id] = true
	}

	for _, badge := range badges.All() {
		var line string
		if unlocked[badge.ID] {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(badge.Color)).
				Bold(true).
				Render(fmt.Sprintf("%s %s — %s", badge.Icon, badge.Name, badge.Criteria))
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("🔒 %s — %s", badge.Name, badge.Criteria))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Progress toward the streak badge while it is still locked.
	if !unlocked[badges.StreakMaster] {
		percent := float64(stats.Streak) / 3.0
		bar := components.NewProgressBar("Next: On Fire!", percent, 40)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	// Score history bar chart.
	heading = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Score History")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, heading))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderChart(stats.History)))

	return b.String()
}

// renderChart draws a vertical bar chart of the history series, one
// column per sample.
func renderChart(history []progress.Sample) string {
	if len(history) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Nothing charted yet. Start practicing!")
	}

	maxScore := 0
	for _, s := range history {
		if s.Score > maxScore {
			maxScore = s.Score
		}
	}
	if maxScore == 0 {
		maxScore = 1
	}

	const colWidth = 5
	barStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	// Build rows top-down; each bar is ██ centered in its column.
	var rows []string
	for level := chartHeight; level >= 1; level-- {
		var row strings.Builder
		for _, s := range history {
			barHeight := s.Score * chartHeight / maxScore
			if barHeight == 0 && s.Score > 0 {
				barHeight = 1
			}
			if barHeight >= level {
				row.WriteString(barStyle.Render(center("██", colWidth)))
			} else {
				row.WriteString(strings.Repeat(" ", colWidth))
			}
		}
		rows = append(rows, row.String())
	}

	// Labels and values under the bars.
	var labels, values strings.Builder
	for _, s := range history {
		labels.WriteString(dimStyle.Render(center(s.Label, colWidth)))
		values.WriteString(dimStyle.Render(center(fmt.Sprintf("%d", s.Score), colWidth)))
	}
	rows = append(rows, labels.String(), values.String())

	return strings.Join(rows, "\n")
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
