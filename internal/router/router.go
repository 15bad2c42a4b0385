// Package router keeps the stack of screens the player has opened.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathadventure/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen.
type PopScreenMsg struct{}

// PopToRootMsg closes every screen above the first.
type PopToRootMsg struct{}

// Router is a stack of screens. The bottom screen is never removed.
type Router struct {
	stack []screen.Screen
}

// New creates a Router whose bottom screen is root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen unless it is the root.
func (r *Router) Pop() tea.Cmd {
	r.truncate(len(r.stack) - 1)
	return nil
}

// PopToRoot closes everything above the root.
func (r *Router) PopToRoot() tea.Cmd {
	r.truncate(1)
	return nil
}

// truncate shrinks the stack to n screens, keeping at least the root.
func (r *Router) truncate(n int) {
	n = max(n, 1)
	if n >= len(r.stack) {
		return
	}
	clear(r.stack[n:])
	r.stack = r.stack[:n]
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of open screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case PopToRootMsg:
		return r.PopToRoot()
	}

	top := len(r.stack) - 1
	if top < 0 {
		return nil
	}
	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

// View renders the active screen into width x height.
func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
