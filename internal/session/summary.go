package session

import "time"

// MaxStars is the most stars a round can earn.
const MaxStars = 3

// Rating grades a finished round by its percentage.
type Rating string

const (
	RatingPerfect   Rating = "perfect"
	RatingExcellent Rating = "excellent"
	RatingGreat     Rating = "great"
	RatingNiceTry   Rating = "nice-try"
)

// RateScore maps a percentage to a rating: 100 is perfect, 80 and up
// excellent, 60 and up great, anything else a nice try.
func RateScore(pct int) Rating {
	switch {
	case pct >= 100:
		return RatingPerfect
	case pct >= 80:
		return RatingExcellent
	case pct >= 60:
		return RatingGreat
	default:
		return RatingNiceTry
	}
}

// Title returns the headline shown on the final score screen.
func (r Rating) Title() string {
	switch r {
	case RatingPerfect:
		return "Perfect Score!"
	case RatingExcellent:
		return "Excellent Work!"
	case RatingGreat:
		return "Great Job!"
	default:
		return "Nice Try!"
	}
}

// Message returns the encouragement line under the title.
func (r Rating) Message() string {
	switch r {
	case RatingPerfect:
		return "You're a Math Superstar!"
	case RatingExcellent:
		return "You did amazing!"
	case RatingGreat:
		return "Keep practicing!"
	default:
		return "Practice makes perfect!"
	}
}

// Emoji returns the badge shown with the score.
func (r Rating) Emoji() string {
	switch r {
	case RatingPerfect:
		return "🌟"
	case RatingExcellent:
		return "⭐"
	case RatingGreat:
		return "💪"
	default:
		return "🌈"
	}
}

// StarsFor returns ceil(pct/34), capped at MaxStars.
func StarsFor(pct int) int {
	if pct <= 0 {
		return 0
	}
	stars := (pct + 33) / 34
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}

// Summary holds the data displayed on the final score screen.
type Summary struct {
	SessionID  string
	TierName   string
	Duration   time.Duration
	Score      int
	Total      int
	Percent    int
	Rating     Rating
	Stars      int
	BestStreak int
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(s *State) *Summary {
	pct := s.Accuracy()
	return &Summary{
		SessionID:  s.ID,
		TierName:   s.Tier.DisplayName(),
		Duration:   s.Elapsed(),
		Score:      s.Score,
		Total:      s.Attempts,
		Percent:    pct,
		Rating:     RateScore(pct),
		Stars:      StarsFor(pct),
		BestStreak: s.BestStreak,
	}
}
