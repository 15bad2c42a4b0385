package session

import (
	"errors"

	"github.com/abhisek/mathadventure/internal/problemgen"
)

// ErrNotAsking is returned by Answer when no problem is awaiting an answer.
var ErrNotAsking = errors.New("no problem awaiting an answer")

// Answer grades an answer to the current problem and updates the score.
// A correct answer extends the streak; a wrong one resets it. The session
// moves to PhaseFeedback until Next is called.
func (s *State) Answer(given int) (*Result, error) {
	if s.Phase != PhaseAsking {
		return nil, ErrNotAsking
	}

	correct := s.Current.Check(given)
	s.Attempts++

	milestone := false
	if correct {
		s.Score++
		s.Streak++
		milestone = IsStreakMilestone(s.Streak)
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}

	res := &Result{
		Problem:   s.Current,
		Given:     given,
		Correct:   correct,
		Streak:    s.Streak,
		Milestone: milestone,
	}
	s.Last = res
	s.Phase = PhaseFeedback

	if s.recorder != nil {
		s.recorder.AnswerRecorded(s.Tier, correct)
	}
	return res, nil
}

// Next draws the following problem once feedback has been shown.
// It is a no-op unless the session is in PhaseFeedback.
func (s *State) Next() problemgen.Problem {
	if s.Phase == PhaseFeedback {
		s.Current = s.gen.Generate(s.Tier, s.Seen)
		s.Phase = PhaseAsking
	}
	return s.Current
}

// Restart zeroes the score and streak, discards the seen-set and draws a
// new problem on the same tier.
func (s *State) Restart() {
	s.reset()
}

// ChangeTier restarts the session on a different tier.
func (s *State) ChangeTier(tier problemgen.Tier) {
	s.Tier = tier
	s.reset()
}

// Finish ends the round and returns its summary.
func (s *State) Finish() *Summary {
	s.Phase = PhaseFinished
	return BuildSummary(s)
}

// Accuracy returns the rounded percentage of correct answers, 0 when
// nothing has been answered.
func (s *State) Accuracy() int {
	return percent(s.Score, s.Attempts)
}

// RoundComplete reports whether a round of length answers is over.
// A non-positive length means the round never ends on its own.
func (s *State) RoundComplete(length int) bool {
	return length > 0 && s.Attempts >= length
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (part*100 + total/2) / total
}
