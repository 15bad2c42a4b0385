// Package finalscore implements the end-of-round score screen.
package finalscore

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventure/internal/router"
	"github.com/abhisek/mathadventure/internal/screen"
	"github.com/abhisek/mathadventure/internal/session"
	"github.com/abhisek/mathadventure/internal/ui/components"
	"github.com/abhisek/mathadventure/internal/ui/layout"
	"github.com/abhisek/mathadventure/internal/ui/theme"
)

// PlayAgainMsg is delivered to the play screen after this screen pops
// itself, asking it to restart on the same tier.
type PlayAgainMsg struct{}

// FinalScoreScreen shows the result of a finished round.
type FinalScoreScreen struct {
	summary *session.Summary
	menu    components.Menu
}

var _ screen.Screen = (*FinalScoreScreen)(nil)
var _ screen.KeyHintProvider = (*FinalScoreScreen)(nil)

// New creates a FinalScoreScreen for summary.
func New(summary *session.Summary) *FinalScoreScreen {
	items := []components.MenuItem{
		{Label: "Play Again! 🎮", Action: playAgain},
		{Label: "Change Level 🎯", Action: changeLevel},
	}
	return &FinalScoreScreen{
		summary: summary,
		menu:    components.NewMenu(items),
	}
}

func playAgain() tea.Cmd {
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return PlayAgainMsg{} },
	)
}

func changeLevel() tea.Cmd {
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (f *FinalScoreScreen) Init() tea.Cmd {
	return nil
}

func (f *FinalScoreScreen) Title() string {
	return "Final Score"
}

func (f *FinalScoreScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Change level"},
	}
}

func (f *FinalScoreScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return f, changeLevel()
	}
	var cmd tea.Cmd
	f.menu, cmd = f.menu.Update(msg)
	return f, cmd
}

func (f *FinalScoreScreen) View(width, height int) string {
	sum := f.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("✨ " + sum.Rating.Title() + " ✨"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(sum.Rating.Message()))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%s  %d / %d", sum.Rating.Emoji(), sum.Score, sum.Total))
	pct := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%d%% Correct!", sum.Percent))
	details := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s • best streak %d • %s", sum.TierName, sum.BestStreak, formatDuration(sum)))
	b.WriteString(components.Card(
		score+"\n"+pct+"\n\n"+RenderStars(sum.Stars)+"\n\n"+details,
		cw, theme.Primary))
	b.WriteString("\n\n")

	fills := []color.Color{theme.Success, theme.Secondary}
	buttons := make([]string, 0, len(f.menu.Items))
	for i, item := range f.menu.Items {
		buttons = append(buttons, components.BigButton(item.Label, i == f.menu.Selected, 24, fills[i%len(fills)]))
	}
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, buttons...)))

	return components.CabinetFrame(b.String(), width, height)
}

// RenderStars draws earned stars bright and the rest dim.
func RenderStars(earned int) string {
	on := lipgloss.NewStyle().Foreground(theme.Sunshine)
	off := lipgloss.NewStyle().Foreground(theme.TextDim)
	parts := make([]string, 0, session.MaxStars)
	for i := range session.MaxStars {
		if i < earned {
			parts = append(parts, on.Render("★"))
		} else {
			parts = append(parts, off.Render("☆"))
		}
	}
	return strings.Join(parts, " ")
}

func formatDuration(sum *session.Summary) string {
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
