package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                           { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                    { return "home" }
func (h *homeStub) Title() string                           { return "Home" }

func newSplash() (*WelcomeScreen, *int) {
	built := 0
	w := New(func() screen.Screen {
		built++
		return &homeStub{}
	})
	return w, &built
}

func advance(w *WelcomeScreen, n int) {
	var s screen.Screen = w
	for i := 0; i < n; i++ {
		s, _ = s.Update(tickMsg(time.Now()))
	}
}

// The tagline appears in the final animation phase only.
func showsTagline(view string) bool {
	return strings.Contains(view, "fun with La-Mila")
}

func TestSplashPhasesRevealTagline(t *testing.T) {
	w, _ := newSplash()

	if showsTagline(w.View(80, 24)) {
		t.Error("tagline visible before the animation ran")
	}

	advance(w, 5) // 500ms, mascot fading in
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("elapsed = %v after 5 ticks, want 500ms", w.elapsed)
	}
	if showsTagline(w.View(80, 24)) {
		t.Error("tagline visible mid-animation")
	}

	advance(w, 20) // past the final phase boundary
	if !showsTagline(w.View(80, 24)) {
		t.Error("tagline missing after the animation finished")
	}
}

func TestSplashWaitsForAKey(t *testing.T) {
	w, built := newSplash()

	// Run well past the end of the animation. Ticks keep arriving for
	// the sparkle effect, but the home screen must not be built yet.
	advance(w, 45)

	if *built != 0 {
		t.Errorf("home factory ran %d times without a keypress", *built)
	}
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
}

func TestAnyKeySkipsStraightToHome(t *testing.T) {
	w, built := newSplash()
	advance(w, 3) // mid-animation

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress mid-animation produced no command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want router.ReplaceScreenMsg", cmd())
	}
	if replace.Screen == nil {
		t.Error("replacement screen is nil")
	}
	if *built != 1 {
		t.Errorf("home factory ran %d times, want 1", *built)
	}
}

func TestSecondKeypressDoesNotRebuildHome(t *testing.T) {
	w, built := newSplash()
	advance(w, 45)

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})

	if cmd != nil {
		t.Error("second keypress produced a command")
	}
	if *built != 1 {
		t.Errorf("home factory ran %d times, want exactly 1", *built)
	}
}

func TestSplashRendersFrameless(t *testing.T) {
	w, _ := newSplash()
	if w.Title() != "" {
		t.Errorf("Title() = %q, want empty so the app skips the header frame", w.Title())
	}
}
