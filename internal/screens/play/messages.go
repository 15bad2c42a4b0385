package play

// feedbackDoneMsg ends the feedback period for answer number seq.
// Stale ticks from before a restart carry an old seq and are ignored.
type feedbackDoneMsg struct {
	seq int
}
