// Package play implements the screen where problems are answered.
package play

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathadventure/internal/feedback"
	"github.com/abhisek/mathadventure/internal/problemgen"
	"github.com/abhisek/mathadventure/internal/router"
	"github.com/abhisek/mathadventure/internal/screen"
	"github.com/abhisek/mathadventure/internal/screens/finalscore"
	"github.com/abhisek/mathadventure/internal/session"
	"github.com/abhisek/mathadventure/internal/ui/components"
	"github.com/abhisek/mathadventure/internal/ui/layout"
)

// DefaultFeedbackDelay is how long answer feedback stays on screen.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// Options wires the play screen's collaborators.
type Options struct {
	Generator     session.Generator
	Picker        *feedback.Picker
	Recorder      session.Recorder
	Logger        zerolog.Logger
	FeedbackDelay time.Duration
	RoundLength   int // 0 plays until the player stops
}

// PlayScreen asks problems for one tier and keeps score.
type PlayScreen struct {
	state   *session.State
	opts    Options
	input   components.AnswerInput
	message feedback.Message
	hint    string
	seq     int
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New starts a session on tier and returns its play screen.
func New(tier problemgen.Tier, opts Options) *PlayScreen {
	if opts.Picker == nil {
		opts.Picker = feedback.NewPicker(nil)
	}
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = DefaultFeedbackDelay
	}

	var sopts []session.Option
	if opts.Recorder != nil {
		sopts = append(sopts, session.WithRecorder(opts.Recorder))
	}

	p := &PlayScreen{
		state: session.New(tier, opts.Generator, sopts...),
		opts:  opts,
		input: newInput(),
	}
	p.logStart()
	return p
}

func newInput() components.AnswerInput {
	return components.NewAnswerInput("Type your answer...", 4)
}

// State exposes the running session.
func (p *PlayScreen) State() *session.State {
	return p.state
}

func (p *PlayScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PlayScreen) Title() string {
	return p.state.Tier.DisplayName()
}

func (p *PlayScreen) Status() string {
	return statusLine(p.state)
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.state.Phase == session.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "Ctrl+R", Description: "Restart"},
			{Key: "Esc", Description: "Change level"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Ctrl+E", Description: "Finish"},
		{Key: "Esc", Description: "Change level"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return p.handleFeedbackDone(msg)

	case finalscore.PlayAgainMsg:
		return p, p.restart()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.state.Phase == session.PhaseAsking {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.opts.Logger.Info().Str("session", p.state.ID).Msg("left play")
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	case "ctrl+r":
		return p, p.restart()
	case "ctrl+e":
		return p, p.finish()
	case "enter":
		return p, p.submit()
	}

	if p.state.Phase != session.PhaseAsking {
		return p, nil
	}
	p.hint = ""
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// submit grades the typed answer and schedules the end of feedback.
// Empty or non-numeric input is ignored.
func (p *PlayScreen) submit() tea.Cmd {
	if p.state.Phase != session.PhaseAsking {
		return nil
	}

	given, err := p.input.Answer()
	if err != nil {
		if p.input.Value() != "" {
			p.hint = "Numbers only, please!"
		}
		return nil
	}

	res, err := p.state.Answer(given)
	if err != nil {
		return nil
	}

	p.hint = ""
	p.message = p.opts.Picker.For(res.Correct)
	p.input.SetDisabled(true)
	p.seq++

	p.opts.Logger.Debug().
		Str("session", p.state.ID).
		Str("problem", res.Problem.Fingerprint()).
		Int("given", given).
		Bool("correct", res.Correct).
		Int("streak", res.Streak).
		Msg("answer")

	seq := p.seq
	return tea.Tick(p.opts.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

func (p *PlayScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.seq != p.seq || p.state.Phase != session.PhaseFeedback {
		return p, nil
	}
	if p.state.RoundComplete(p.opts.RoundLength) {
		return p, p.finish()
	}
	p.state.Next()
	p.input.Reset()
	return p, p.input.Init()
}

// restart zeroes the score and discards the seen problems.
func (p *PlayScreen) restart() tea.Cmd {
	p.state.Restart()
	p.seq++
	p.hint = ""
	p.message = feedback.Message{}
	p.input = newInput()
	p.logStart()
	return p.input.Init()
}

// finish ends the round and shows the final score. With nothing answered
// there is nothing to score, so it is a no-op.
func (p *PlayScreen) finish() tea.Cmd {
	if p.state.Attempts == 0 {
		return nil
	}
	p.seq++
	summary := p.state.Finish()
	p.opts.Logger.Info().
		Str("session", summary.SessionID).
		Str("tier", p.state.Tier.String()).
		Int("score", summary.Score).
		Int("total", summary.Total).
		Dur("duration", summary.Duration).
		Msg("round finished")
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: finalscore.New(summary)}
	}
}

func (p *PlayScreen) logStart() {
	p.opts.Logger.Info().
		Str("session", p.state.ID).
		Str("tier", p.state.Tier.String()).
		Msg("session started")
}
