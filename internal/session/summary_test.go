package session

import "testing"

func TestRateScore(t *testing.T) {
	tests := []struct {
		pct  int
		want Rating
	}{
		{100, RatingPerfect},
		{99, RatingExcellent},
		{80, RatingExcellent},
		{79, RatingGreat},
		{60, RatingGreat},
		{59, RatingNiceTry},
		{0, RatingNiceTry},
	}
	for _, tt := range tests {
		if got := RateScore(tt.pct); got != tt.want {
			t.Errorf("RateScore(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestStarsFor(t *testing.T) {
	tests := []struct {
		pct  int
		want int
	}{
		{0, 0},
		{1, 1},
		{34, 1},
		{35, 2},
		{68, 2},
		{69, 3},
		{100, 3},
	}
	for _, tt := range tests {
		if got := StarsFor(tt.pct); got != tt.want {
			t.Errorf("StarsFor(%d) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestRatingText(t *testing.T) {
	for _, r := range []Rating{RatingPerfect, RatingExcellent, RatingGreat, RatingNiceTry} {
		if r.Title() == "" || r.Message() == "" || r.Emoji() == "" {
			t.Errorf("rating %q has empty display text", r)
		}
	}
	if RatingPerfect.Title() == RatingNiceTry.Title() {
		t.Error("perfect and nice-try share a title")
	}
}

func TestIsStreakMilestone(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{0, false},
		{4, false},
		{5, true},
		{6, false},
		{10, true},
		{25, true},
	}

	for _, tt := range tests {
		if got := IsStreakMilestone(tt.n); got != tt.want {
			t.Errorf("IsStreakMilestone(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
