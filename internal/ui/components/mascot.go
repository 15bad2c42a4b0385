package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventure/internal/ui/theme"
)

// Mood selects the mascot's face.
type Mood int

const (
	MoodHappy    Mood = iota // Waiting for a level or an answer
	MoodCheering             // Right answer
	MoodHugging              // Wrong answer, try again
)

const mascotHappy = `╭─────╮
│ ◕ ◕ │
│  ◡  │
│+−×÷ │
╰─────╯`

const mascotCheering = `\╭─────╮/
 │ ★ ★ │
 │  ▽  │
 │+−×÷ │
 ╰─────╯`

const mascotHugging = `╭─────╮
│ ◕ ◕ │
│  ~  │
│+−×÷ │
╰┬───┬╯
 ♥   ♥`

// Mascot renders the counting buddy in the given mood.
func Mascot(mood Mood) string {
	art, fg := mascotHappy, theme.Primary
	switch mood {
	case MoodCheering:
		art, fg = mascotCheering, theme.Sunshine
	case MoodHugging:
		art, fg = mascotHugging, theme.Secondary
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
