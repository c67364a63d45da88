package access

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/session"
)

func TestToggleFlipsPreference(t *testing.T) {
	ctrl := session.New()
	a := New(ctrl)

	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // first row: large text
	if !ctrl.Access().LargeText {
		t.Fatal("expected large text enabled after toggle")
	}

	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ctrl.Access().LargeText {
		t.Error("expected large text disabled after second toggle")
	}
}

func TestNavigationStopsAtEdges(t *testing.T) {
	ctrl := session.New()
	a := New(ctrl)

	a.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if a.selected != 0 {
		t.Errorf("expected selection pinned at 0, got %d", a.selected)
	}

	for i := 0; i < 10; i++ {
		a.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if a.selected != len(rows)-1 {
		t.Errorf("expected selection pinned at %d, got %d", len(rows)-1, a.selected)
	}
}

func TestEscPopsScreen(t *testing.T) {
	ctrl := session.New()
	a := New(ctrl)

	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}

func TestViewMarksEnabledToggles(t *testing.T) {
	ctrl := session.New()
	ctrl.ToggleAccessibility(session.AccessHighContrast)
	a := New(ctrl)

	view := a.View(80, 24)
	if !containsStr(view, "☑") {
		t.Error("expected a checked box for the enabled toggle")
	}
	if !containsStr(view, "☐") {
		t.Error("expected unchecked boxes for the remaining toggles")
	}
}

func containsStr(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
