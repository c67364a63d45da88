// Package screen declares what the router and app model need from a
// screen. Concrete screens live under internal/screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lamila/fundabuddy/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd

	// Update returns the screen to keep on the stack, usually the
	// receiver itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area only; the app adds header/footer.
	View(width, height int) string

	// Title labels the header. An empty title renders the screen
	// frameless (the welcome splash).
	Title() string
}

// KeyHintProvider lets a screen put its own hints in the footer. The
// app appends the quit hint regardless.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
