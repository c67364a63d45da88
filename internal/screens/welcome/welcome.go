package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
	"github.com/lamila/fundabuddy/internal/ui/theme"
)

// The splash plays in phases: mascot alone, then sparkles, then the
// banner and tagline. It loops sparkles until a key is pressed — small
// kids get as long as they like to look at the lion.
const (
	tickInterval = 100 * time.Millisecond
	sparklesAt   = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const mascotArt = `  ╭───────────╮
  │   ∩   ∩   │
  │  ┌─────┐  │
  │  │ ◠ ◠ │  │
  │  │  ω  │  │
  │  └─────┘  │
  │  La-Mila  │
  ╰───────────╯`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen is the splash shown at startup. Any key replaces it
// with the home screen built by homeFactory; the factory indirection
// keeps this package from importing home.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

// Title is empty so the app renders the splash without header chrome.
func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.toHome()
	}
	return w, nil
}

// toHome builds the home screen exactly once and swaps it in.
func (w *WelcomeScreen) toHome() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	mascot := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.elapsed >= sparklesAt {
		mascot = w.sparkled(mascot)
	}

	sections := []string{mascot}
	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Learning is fun with La-Mila!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// sparkled decorates a few mascot rows with alternating sparkle glyphs,
// flipping every tick.
func (w *WelcomeScreen) sparkled(mascot string) string {
	glyph := sparkleFrames[w.tickCount%len(sparkleFrames)]
	a := lipgloss.NewStyle().Foreground(theme.Accent).Render(glyph)
	b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(glyph)

	lines := strings.Split(mascot, "\n")
	for i, pair := range map[int][2]string{0: {a, b}, 3: {b, a}, 6: {a, b}} {
		if i < len(lines) {
			lines[i] = pair[0] + "  " + lines[i] + "  " + pair[1]
		}
	}
	return strings.Join(lines, "\n")
}
