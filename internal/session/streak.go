package session

// StreakStep is the distance between celebrated streak lengths.
const StreakStep = 5

// IsStreakMilestone reports whether n answers in a row earns a cheer.
func IsStreakMilestone(n int) bool {
	return n > 0 && n%StreakStep == 0
}
