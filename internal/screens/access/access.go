// Package access is the accessibility preferences screen: four
// independent toggles the learner can flip at any time.
package access

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
	"github.com/lamila/fundabuddy/internal/session"
	"github.com/lamila/fundabuddy/internal/ui/components"
	"github.com/lamila/fundabuddy/internal/ui/layout"
	"github.com/lamila/fundabuddy/internal/ui/theme"
)

type toggleRow struct {
	key         session.AccessKey
	label       string
	description string
}

var rows = []toggleRow{
	{session.AccessLargeText, "Large text", "Wider letter spacing for easier reading"},
	{session.AccessHighContrast, "High contrast", "Stronger colors for low vision"},
	{session.AccessSimpleMode, "Simple mode", "Fewer animations and decorations"},
	{session.AccessAudioEnabled, "Read aloud", "Speak questions and feedback"},
}

// AccessScreen lets the learner flip accessibility preferences.
type AccessScreen struct {
	ctrl     *session.Controller
	selected int
}

var _ screen.Screen = (*AccessScreen)(nil)
var _ screen.KeyHintProvider = (*AccessScreen)(nil)

// New creates an AccessScreen driving the given controller.
func New(ctrl *session.Controller) *AccessScreen {
	return &AccessScreen{ctrl: ctrl}
}

func (a *AccessScreen) Init() tea.Cmd {
	return nil
}

func (a *AccessScreen) Title() string {
	return "Accessibility"
}

func (a *AccessScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter/Space", Description: "Toggle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AccessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "esc":
		return a, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(rows)-1 {
			a.selected++
		}
	case "enter", " ", "space":
		row := rows[a.selected]
		a.ctrl.ToggleAccessibility(row.key)
		if row.key == session.AccessHighContrast {
			theme.SetHighContrast(a.ctrl.Access().HighContrast)
		}
	}

	return a, nil
}

func (a *AccessScreen) View(width, height int) string {
	prefs := a.ctrl.Access()
	cw := components.ContentWidth(width)

	states := map[session.AccessKey]bool{
		session.AccessLargeText:    prefs.LargeText,
		session.AccessHighContrast: prefs.HighContrast,
		session.AccessSimpleMode:   prefs.SimpleMode,
		session.AccessAudioEnabled: prefs.AudioEnabled,
	}

	var b strings.Builder

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Make Funda Buddy work for you")
	b.WriteString(heading)
	b.WriteString("\n\n")

	for i, row := range rows {
		box := "☐"
		boxStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if states[row.key] {
			box = "☑"
			boxStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		marker := "  "
		labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == a.selected {
			marker = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ")
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, boxStyle.Render(box), labelStyle.Render(row.label)))
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("      " + row.description))
		b.WriteString("\n\n")
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
