package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗   ██╗███╗   ██╗██████╗  █████╗
 ██╔════╝██║   ██║████╗  ██║██╔══██╗██╔══██╗
 █████╗  ██║   ██║██╔██╗ ██║██║  ██║███████║
 ██╔══╝  ██║   ██║██║╚██╗██║██║  ██║██╔══██║
 ██║     ╚██████╔╝██║ ╚████║██████╔╝██║  ██║
 ╚═╝      ╚═════╝ ╚═╝  ╚═══╝╚═════╝ ╚═╝  ╚═╝
              B  U  D  D  Y`

const bannerCompact = "F U N D A   B U D D Y"

// RenderBanner returns the FUNDA BUDDY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 48 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
