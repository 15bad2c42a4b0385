package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathadventure/internal/feedback"
	"github.com/abhisek/mathadventure/internal/problemgen"
	"github.com/abhisek/mathadventure/internal/router"
	"github.com/abhisek/mathadventure/internal/screen"
	"github.com/abhisek/mathadventure/internal/screens/levels"
	"github.com/abhisek/mathadventure/internal/screens/play"
	"github.com/abhisek/mathadventure/internal/session"
	"github.com/abhisek/mathadventure/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	Generator     session.Generator
	Picker        *feedback.Picker
	Recorder      session.Recorder
	Logger        zerolog.Logger
	FeedbackDelay time.Duration
	RoundLength   int

	// StartTier skips level select and opens play on this tier.
	StartTier *problemgen.Tier
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at level select.
func newAppModel(opts Options) AppModel {
	newPlay := func(tier problemgen.Tier) screen.Screen {
		return play.New(tier, play.Options{
			Generator:     opts.Generator,
			Picker:        opts.Picker,
			Recorder:      opts.Recorder,
			Logger:        opts.Logger,
			FeedbackDelay: opts.FeedbackDelay,
			RoundLength:   opts.RoundLength,
		})
	}

	r := router.New(levels.New(newPlay))
	if opts.StartTier != nil {
		r.Push(newPlay(*opts.StartTier))
	}
	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
