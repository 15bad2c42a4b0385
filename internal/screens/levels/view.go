package levels

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventure/internal/problemgen"
	"github.com/abhisek/mathadventure/internal/ui/components"
	"github.com/abhisek/mathadventure/internal/ui/theme"
)

const titleArt = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const titleCompact = "✨ M · A · T · H ✨"

// buttonWidth is the fixed width for level buttons.
const buttonWidth = 30

// Content heights needed for the full title and for the mascot.
const (
	fullHeight   = 27
	mascotHeight = 6
)

func (l *LevelsScreen) View(width, height int) string {
	compact := width < 70 || height < fullHeight
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if height >= fullHeight+mascotHeight {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.Mascot(components.MoodHappy)))
	}
	sections = append(sections, theme.Subtitle.Width(cw).Render("Choose your level!"))

	buttons := make([]string, 0, len(l.menu.Items))
	for i, item := range l.menu.Items {
		label := item.Label
		if item.Detail != "" && !compact {
			label += "\n" + item.Detail
		}
		buttons = append(buttons, components.BigButton(label, i == l.menu.Selected, buttonWidth, buttonColor(i, l.tiers)))
	}
	sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, buttons...)))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Sunshine).Bold(true)
	sub := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	art := titleArt
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art) + "\n" + sub.Render("A D V E N T U R E !"))
}

func buttonColor(i int, tiers []problemgen.Tier) color.Color {
	if i >= len(tiers) {
		return theme.Border
	}
	switch tiers[i] {
	case problemgen.TierYoungest:
		return theme.LevelGreen
	case problemgen.TierMiddle:
		return theme.LevelBlue
	default:
		return theme.LevelPurple
	}
}
