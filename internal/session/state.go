package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathadventure/internal/problemgen"
)

// Generator draws the next problem for a tier, recording it in seen.
type Generator interface {
	Generate(tier problemgen.Tier, seen problemgen.SeenSet) problemgen.Problem
}

// Recorder is notified of every answered problem.
type Recorder interface {
	AnswerRecorded(tier problemgen.Tier, correct bool)
}

// Phase represents the current phase of a play session.
type Phase int

const (
	PhaseAsking   Phase = iota // Waiting for an answer
	PhaseFeedback              // Showing answer feedback
	PhaseFinished              // Round ended, summary shown
)

// State tracks one play session: a tier, the problems issued so far and
// the running score. It is owned by a single event loop and is not safe
// for concurrent use.
type State struct {
	// ID identifies the session in logs.
	ID string

	// Tier is the difficulty tier being played.
	Tier problemgen.Tier

	// Seen holds fingerprints issued this session; replaced on restart.
	Seen problemgen.SeenSet

	// Current is the problem on screen.
	Current problemgen.Problem

	// Score is the number of correct answers.
	Score int

	// Attempts is the number of answered problems.
	Attempts int

	// Streak counts consecutive correct answers.
	Streak int

	// BestStreak is the longest streak this session.
	BestStreak int

	// Phase is the current session phase.
	Phase Phase

	// Last is the outcome of the most recent answer (nil before the first).
	Last *Result

	// StartTime is when the session (or last restart) began.
	StartTime time.Time

	gen      Generator
	recorder Recorder
	now      func() time.Time
}

// Result describes the outcome of one answer.
type Result struct {
	Problem   problemgen.Problem
	Given     int
	Correct   bool
	Streak    int
	Milestone bool // streak just reached a milestone
}

// Option configures a State.
type Option func(*State)

// WithRecorder sets the answer recorder.
func WithRecorder(r Recorder) Option {
	return func(s *State) { s.recorder = r }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// New starts a session on tier and draws its first problem.
func New(tier problemgen.Tier, gen Generator, opts ...Option) *State {
	s := &State{
		ID:   uuid.New().String(),
		Tier: tier,
		gen:  gen,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset clears the score, discards the seen-set and draws a fresh problem.
func (s *State) reset() {
	s.Seen = problemgen.NewSeenSet()
	s.Score = 0
	s.Attempts = 0
	s.Streak = 0
	s.BestStreak = 0
	s.Last = nil
	s.StartTime = s.now()
	s.Current = s.gen.Generate(s.Tier, s.Seen)
	s.Phase = PhaseAsking
}

// Elapsed returns the time since the session started.
func (s *State) Elapsed() time.Duration {
	return s.now().Sub(s.StartTime)
}
