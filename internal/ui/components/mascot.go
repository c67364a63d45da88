package components

import (
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/ui/theme"
)

// MascotVariant selects which La-Mila art to display.
type MascotVariant int

const (
	MascotHappy       MascotVariant = iota // Default, soft blue
	MascotNeutral                          // Flat mouth, after a miss
	MascotThinking                         // Question mark, while generating
	MascotCelebrating                      // Star eyes, correct answer
)

const mascotHappy = `  ∩ ∩
┌─────┐
│ ◠ ◠ │
│  ω  │
└─────┘`

const mascotNeutral = `  ∩ ∩
┌─────┐
│ ◉ ◉ │
│  ─  │
└─────┘`

const mascotThinking = `  ∩ ∩
┌─────┐
│ ◉ ◉ │ ?
│  ○  │
└─────┘`

const mascotCelebrating = `  ∩ ∩
┌─────┐
│ ★ ★ │
│  ▽  │
└─╥═╥─┘
  ╚═╝`

// RenderMascot returns the La-Mila lion art for the given variant.
func RenderMascot(v MascotVariant) string {
	var art string
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotThinking:
		art = mascotThinking
		fg = theme.Secondary
	case MascotNeutral:
		art = mascotNeutral
		fg = theme.Warm
	default:
		art = mascotHappy
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// SpeechBubble renders the mascot's message next to the art.
func SpeechBubble(message string, maxWidth int) string {
	if message == "" {
		return ""
	}
	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 1).
		Width(min(maxWidth, lipgloss.Width(message)+4)).
		Render(message)
	return bubble
}

// MascotWithBubble lays the mascot art and its speech bubble side by side.
func MascotWithBubble(v MascotVariant, message string, width int) string {
	art := RenderMascot(v)
	if message == "" {
		return art
	}
	bubbleWidth := width - lipgloss.Width(art) - 4
	if bubbleWidth < 16 {
		return art + "\n" + SpeechBubble(message, width)
	}
	bubble := SpeechBubble(message, bubbleWidth)
	return lipgloss.JoinHorizontal(lipgloss.Center, art, "  ", bubble)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
