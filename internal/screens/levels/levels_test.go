package levels

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathadventure/internal/problemgen"
	"github.com/abhisek/mathadventure/internal/router"
	"github.com/abhisek/mathadventure/internal/screen"
)

type stubPlay struct{ tier problemgen.Tier }

func (s *stubPlay) Init() tea.Cmd                           { return nil }
func (s *stubPlay) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubPlay) View(int, int) string                    { return "" }
func (s *stubPlay) Title() string                           { return s.tier.DisplayName() }

func newTestScreen() *LevelsScreen {
	return New(func(tier problemgen.Tier) screen.Screen { return &stubPlay{tier: tier} })
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func pushedTier(t *testing.T, cmd tea.Cmd) problemgen.Tier {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	return push.Screen.(*stubPlay).tier
}

func TestEnterPushesSelectedTier(t *testing.T) {
	l := newTestScreen()
	l.Update(specialKey(tea.KeyDown))

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if got := pushedTier(t, cmd); got != problemgen.TierMiddle {
		t.Errorf("pushed %v, want TierMiddle", got)
	}
}

func TestNumberShortcut(t *testing.T) {
	l := newTestScreen()
	_, cmd := l.Update(keyPress('3'))
	if got := pushedTier(t, cmd); got != problemgen.TierOldest {
		t.Errorf("pushed %v, want TierOldest", got)
	}
}

func TestExitQuits(t *testing.T) {
	l := newTestScreen()
	for range problemgen.Tiers() {
		l.Update(specialKey(tea.KeyDown))
	}
	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestNumberShortcutSkipsExit(t *testing.T) {
	l := newTestScreen()
	if _, cmd := l.Update(keyPress('4')); cmd != nil {
		t.Error("'4' should not activate Exit")
	}
	if !strings.Contains(l.View(120, 40), "Exit") {
		t.Error("Exit button should still be shown")
	}
}

func TestViewListsEveryTier(t *testing.T) {
	l := newTestScreen()
	view := l.View(120, 40)
	for _, tier := range problemgen.Tiers() {
		if !strings.Contains(view, tier.DisplayName()) {
			t.Errorf("view missing %q", tier.DisplayName())
		}
	}
}
