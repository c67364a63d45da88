package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. Disabled entries render dim
// and are skipped by the cursor — the home screen disables START
// LEARNING until a provider key is found.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu driven by up/down/enter (and j/k).
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

// Update moves the cursor or fires the selected item's action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.Selected = m.seek(m.Selected, -1)
	case "down", "j":
		m.Selected = m.seek(m.Selected, +1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

// seek walks from the cursor in the given direction to the next enabled
// item, staying put when there is none.
func (m Menu) seek(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return from
}

func (m Menu) View() string {
	var b []byte
	for i, item := range m.Items {
		line := "    " + item.Label
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == m.Selected:
			line = "  ▸ " + item.Label
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case item.Disabled:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b = append(b, style.Render(line)...)
		b = append(b, '\n')
	}
	return string(b)
}
