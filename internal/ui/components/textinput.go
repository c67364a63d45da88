package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/ui/theme"
)

// TextInput is the answer box for short-answer and fill-in-the-blank
// questions. After Submit it shows a ✓ or ✗ beside the typed answer.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewTextInput builds a focused input. charLimit caps the answer length;
// learner answers are a word or a short phrase.
func NewTextInput(placeholder string, charLimit int) TextInput {
	inner := textinput.New()
	inner.Placeholder = placeholder
	inner.Focus()
	if charLimit > 0 {
		inner.CharLimit = charLimit
	}
	return TextInput{Model: inner}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	switch {
	case t.submitted && t.correct:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case t.submitted:
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value is the learner's current answer text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit freezes the verdict mark next to the input.
func (t *TextInput) Submit(correct bool) {
	t.submitted = true
	t.correct = correct
}
