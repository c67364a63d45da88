package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — kid-friendly, bright but not garish
var (
	Primary   = lipgloss.Color("#6ECFF6") // Soft Blue
	Secondary = lipgloss.Color("#A98CE5") // Purple
	Accent    = lipgloss.Color("#FFD84D") // Sunshine Yellow
	Warm      = lipgloss.Color("#FFA552") // Orange
	Success   = lipgloss.Color("#76C66E") // Green
	Error     = lipgloss.Color("#FF6F6F") // Coral Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title lipgloss.Style

	Subtitle lipgloss.Style

	Body lipgloss.Style

	Hint lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style

	Footer lipgloss.Style

	Card lipgloss.Style
)

// States
var (
	Selected lipgloss.Style

	Unselected lipgloss.Style

	Correct lipgloss.Style

	Incorrect lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style

	ProgressEmpty lipgloss.Style

	ButtonActive lipgloss.Style

	ButtonInactive lipgloss.Style
)

func init() {
	rebuild()
}

// SetHighContrast switches the palette. The style vars are rebuilt in
// place so screens pick up the change on their next render.
func SetHighContrast(enabled bool) {
	if enabled {
		Primary = lipgloss.Color("#00FFFF")
		Secondary = lipgloss.Color("#FF00FF")
		Accent = lipgloss.Color("#FFFF00")
		Warm = lipgloss.Color("#FFAA00")
		Success = lipgloss.Color("#00FF00")
		Error = lipgloss.Color("#FF4040")
		Text = lipgloss.Color("#FFFFFF")
		TextDim = lipgloss.Color("#E2E8F0")
		BgDark = lipgloss.Color("#000000")
		BgCard = lipgloss.Color("#000000")
		Border = lipgloss.Color("#FFFFFF")
	} else {
		Primary = lipgloss.Color("#6ECFF6")
		Secondary = lipgloss.Color("#A98CE5")
		Accent = lipgloss.Color("#FFD84D")
		Warm = lipgloss.Color("#FFA552")
		Success = lipgloss.Color("#76C66E")
		Error = lipgloss.Color("#FF6F6F")
		Text = lipgloss.Color("#F8FAFC")
		TextDim = lipgloss.Color("#94A3B8")
		BgDark = lipgloss.Color("#0F172A")
		BgCard = lipgloss.Color("#1E293B")
		Border = lipgloss.Color("#334155")
	}
	rebuild()
}

func rebuild() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(BgDark).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
