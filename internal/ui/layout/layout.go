// Package layout draws the chrome around the active screen: a header
// bar with the session score, a footer with key hints, and the guard
// shown when the terminal is too small for the quiz UI.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one entry in the footer, e.g. {"Enter", "Answer"}.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum the quiz
// layout needs.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the whole terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays three rendered segments across innerWidth: left-aligned,
// centered, right-aligned. Gaps collapse to one space when cramped.
func spread(left, center, right string, innerWidth int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	gapL := (innerWidth-cw)/2 - lw
	if gapL < 1 {
		gapL = 1
	}
	gapR := innerWidth - lw - gapL - cw - rw
	if gapR < 1 {
		gapR = 1
	}
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderHeader draws the top bar: app name, the active screen's title,
// and the live score and streak.
func RenderHeader(title string, score, streak int, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Funda Buddy")
	screen := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	stats := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d", score)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Warm).Render(fmt.Sprintf("🔥 %d", streak))

	inner := width - 4 // border and padding
	if inner < 0 {
		inner = 0
	}
	return bar(width, spread(brand, screen, stats, inner))
}

// RenderFooter draws the bottom bar from the active screen's key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return bar(width, "  "+strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, stretching the content
// region to fill the leftover height.
func RenderFrame(header, content, footer string, width, height int) string {
	room := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if room < 0 {
		room = 0
	}
	body := lipgloss.NewStyle().Width(width).Height(room).Render(content)
	return header + "\n" + body + "\n" + footer
}
