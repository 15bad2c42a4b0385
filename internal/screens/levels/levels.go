// Package levels implements the level-select screen.
package levels

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathadventure/internal/problemgen"
	"github.com/abhisek/mathadventure/internal/router"
	"github.com/abhisek/mathadventure/internal/screen"
	"github.com/abhisek/mathadventure/internal/ui/components"
	"github.com/abhisek/mathadventure/internal/ui/layout"
)

// PlayFactory builds the play screen for a tier.
type PlayFactory func(tier problemgen.Tier) screen.Screen

// LevelsScreen lets the player pick a difficulty tier.
type LevelsScreen struct {
	menu  components.Menu
	tiers []problemgen.Tier
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

// New creates the level-select screen. Choosing a tier pushes the screen
// built by newPlay.
func New(newPlay PlayFactory) *LevelsScreen {
	tiers := problemgen.Tiers()
	items := make([]components.MenuItem, 0, len(tiers)+1)
	for _, tier := range tiers {
		items = append(items, components.MenuItem{
			Label:  tier.DisplayName(),
			Detail: tier.Tagline(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newPlay(tier)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Exit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	menu := components.NewMenu(items)
	menu.Shortcuts = len(tiers)

	return &LevelsScreen{
		menu:  menu,
		tiers: tiers,
	}
}

func (l *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (l *LevelsScreen) Title() string {
	return "Choose Your Level"
}

func (l *LevelsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "1-3", Description: "Quick pick"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}
