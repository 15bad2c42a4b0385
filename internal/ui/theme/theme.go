package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: purple, pink and sunshine for young players
var (
	Primary   = lipgloss.Color("#A855F7") // Purple
	Secondary = lipgloss.Color("#EC4899") // Pink
	Accent    = lipgloss.Color("#F97316") // Orange
	Sunshine  = lipgloss.Color("#FACC15") // Yellow
	Sky       = lipgloss.Color("#38BDF8") // Blue
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#1E1B4B") // Indigo night
	BgCard    = lipgloss.Color("#312E81") // Indigo
	Border    = lipgloss.Color("#4C1D95") // Deep violet
)

// Level colors, one per tier button.
var (
	LevelGreen  = Success
	LevelBlue   = Sky
	LevelPurple = Primary
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Sunshine).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
