package problemgen

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Rand is the random source used to draw candidates. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

// Observer receives generation outcomes. Implementations must be cheap;
// they are called inline on every draw.
type Observer interface {
	ProblemAccepted(tier Tier, op Operation)
	DuplicateRejected(tier Tier)
	AttemptsExhausted(tier Tier)
}

// Generator draws arithmetic problems for a tier, skipping problems whose
// fingerprint is already in the caller's seen-set.
type Generator struct {
	rng         Rand
	maxAttempts int
	observer    Observer
	logger      zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSeed seeds a deterministic PCG source.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithObserver sets the outcome observer.
func WithObserver(o Observer) Option {
	return func(g *Generator) { g.observer = o }
}

// WithLogger sets the logger used for exhaustion warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator from cfg and options. Without WithRand or
// WithSeed it uses a randomly seeded source.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		maxAttempts: cfg.MaxAttempts,
		logger:      zerolog.Nop(),
	}
	if g.maxAttempts <= 0 {
		g.maxAttempts = MaxAttempts
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Generate returns a problem for tier whose fingerprint is not in seen and
// records that fingerprint. If every attempt draws a duplicate, it returns
// one more fresh candidate without checking or recording it, so a call
// always terminates with a usable problem.
func (g *Generator) Generate(tier Tier, seen SeenSet) Problem {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		p := g.Candidate(tier)
		fp := p.Fingerprint()
		if !seen.Has(fp) {
			seen.Add(fp)
			if g.observer != nil {
				g.observer.ProblemAccepted(tier, p.Op)
			}
			return p
		}
		if g.observer != nil {
			g.observer.DuplicateRejected(tier)
		}
	}

	p := g.Candidate(tier)
	g.logger.Warn().
		Str("tier", tier.String()).
		Int("attempts", g.maxAttempts).
		Int("seen", seen.Len()).
		Str("problem", p.Fingerprint()).
		Msg("problem space exhausted, allowing a repeat")
	if g.observer != nil {
		g.observer.AttemptsExhausted(tier)
	}
	return p
}

// Candidate draws one problem using the tier's operand rule, with no
// de-duplication.
func (g *Generator) Candidate(tier Tier) Problem {
	r := ruleFor(tier)
	op := r.ops[g.rng.IntN(len(r.ops))]

	switch op {
	case OpAdd:
		num1 := g.between(1, r.addFirstMax)
		num2 := g.between(1, r.addSumMax-num1)
		return NewProblem(num1, op, num2)
	case OpSubtract:
		num1 := g.between(1, r.subFirstMax)
		num2 := g.between(1, num1)
		return NewProblem(num1, op, num2)
	case OpMultiply:
		num1 := g.between(1, r.factorMax)
		num2 := g.between(1, r.factorMax)
		return NewProblem(num1, op, num2)
	default:
		divisor := g.between(1, r.factorMax)
		quotient := g.between(1, r.factorMax)
		return NewProblem(divisor*quotient, OpDivide, divisor)
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
