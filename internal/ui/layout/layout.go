// Package layout draws the frame around every screen: a title bar on top,
// key hints at the bottom and the active screen in between.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventure/internal/ui/theme"
)

// Smallest terminal the game draws into.
const (
	MinWidth  = 60
	MinHeight = 20
)

const appName = "✨ Math Adventure!"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nPlease make it at least %d x %d\n(now %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Sunshine).Align(lipgloss.Center).Render(msg))
}

// bar is the rounded strip used for both header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader shows the game name on the left, title in the middle and
// an optional status on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)
	third := inner / 3

	left := lipgloss.NewStyle().Foreground(theme.Sunshine).Bold(true).
		Width(third).Render(" " + appName)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Width(third).Align(lipgloss.Right).Render(status + " ")
	middle := lipgloss.NewStyle().Foreground(theme.Text).
		Width(inner - 2*third).Align(lipgloss.Center).Render(title)

	return bar(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right))
}

// RenderFooter lists key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Sunshine).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	dot := desc.Render("  •  ")

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render(" " + strings.Join(parts, dot))
}

// RenderFrame stacks header, content and footer, stretching the content to
// fill the height between them.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
