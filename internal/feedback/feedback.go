// Package feedback picks the encouraging message shown after an answer.
package feedback

import "math/rand/v2"

// Kind selects the message catalogue.
type Kind int

const (
	KindCorrect Kind = iota
	KindIncorrect
)

// Message is a single encouragement line.
type Message struct {
	Text  string
	Emoji string
}

var correctMessages = []Message{
	{"You're a Star!", "🌟"},
	{"Super Smart!", "🎉"},
	{"Way to Go!", "👏"},
	{"You Rock!", "🎊"},
	{"Amazing Work!", "💖"},
	{"You Did It!", "😊"},
	{"Awesome Job!", "✨"},
	{"Perfect!", "⭐"},
	{"Fantastic!", "🚀"},
}

var incorrectMessages = []Message{
	{"Keep Trying!", "💪"},
	{"You Can Do It!", "👍"},
	{"Try Again!", "😊"},
	{"Almost There!", "✨"},
	{"Don't Give Up!", "💫"},
	{"Good Effort!", "❤️"},
}

// Messages returns the catalogue for kind.
func Messages(kind Kind) []Message {
	if kind == KindCorrect {
		return correctMessages
	}
	return incorrectMessages
}

// Picker chooses messages uniformly at random.
type Picker struct {
	rng interface{ IntN(n int) int }
}

// NewPicker returns a Picker over rng. A nil rng uses a randomly seeded source.
func NewPicker(rng interface{ IntN(n int) int }) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{rng: rng}
}

// Pick returns a random message of the given kind.
func (p *Picker) Pick(kind Kind) Message {
	msgs := Messages(kind)
	return msgs[p.rng.IntN(len(msgs))]
}

// For is shorthand for picking by answer correctness.
func (p *Picker) For(correct bool) Message {
	if correct {
		return p.Pick(KindCorrect)
	}
	return p.Pick(KindIncorrect)
}
