// Package router keeps the stack of screens the app navigates between.
// Screens request navigation by emitting one of the message types below
// from their Update; the app model feeds every message through here.
package router

import (
	"github.com/lamila/fundabuddy/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg opens a screen on top of the current one. Esc on the
// new screen returns to the one below (home → rewards, home → access).
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen in place. Used where going back
// would land on a stale screen: welcome → home, setup → quiz.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active is the screen currently receiving input.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports the stack size.
func (r *Router) Depth() int { return len(r.stack) }

// Push opens s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen. Popping the root is a no-op.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the active screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Update intercepts navigation messages and forwards everything else to
// the active screen, keeping whatever screen value it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

// View renders the active screen into the given content area.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
