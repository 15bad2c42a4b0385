package problemgen

import (
	"math/rand/v2"
	"testing"
)

// scriptedRand replays fixed draws in order, then falls back to zero.
type scriptedRand struct {
	draws []int
	calls []int // the n passed to each IntN call
}

func (s *scriptedRand) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

// countingObserver records observer callbacks.
type countingObserver struct {
	accepted  int
	rejected  int
	exhausted int
}

func (c *countingObserver) ProblemAccepted(Tier, Operation) { c.accepted++ }
func (c *countingObserver) DuplicateRejected(Tier)          { c.rejected++ }
func (c *countingObserver) AttemptsExhausted(Tier)          { c.exhausted++ }

func seeded(seed uint64) *Generator {
	return New(DefaultConfig(), WithSeed(seed))
}

func TestGenerate_OldestDivideExample(t *testing.T) {
	// operator index 3 = divide, divisor draw 3 -> 4, quotient draw 2 -> 3.
	g := New(DefaultConfig(), WithRand(&scriptedRand{draws: []int{3, 3, 2}}))
	seen := NewSeenSet()

	p := g.Generate(TierOldest, seen)

	want := Problem{Num1: 12, Num2: 4, Op: OpDivide, Answer: 3}
	if p != want {
		t.Fatalf("Generate = %+v, want %+v", p, want)
	}
	if !seen.Has("12/4") {
		t.Errorf("seen-set missing fingerprint 12/4: %v", seen)
	}
}

func TestGenerate_YoungestSubtractExample(t *testing.T) {
	// operator index 1 = subtract, num1 draw 4 -> 5, num2 draw 4 -> 5.
	g := New(DefaultConfig(), WithRand(&scriptedRand{draws: []int{1, 4, 4}}))
	seen := NewSeenSet()

	p := g.Generate(TierYoungest, seen)

	want := Problem{Num1: 5, Num2: 5, Op: OpSubtract, Answer: 0}
	if p != want {
		t.Fatalf("Generate = %+v, want %+v", p, want)
	}
	if got := p.Fingerprint(); got != "5-5" {
		t.Errorf("Fingerprint = %q, want %q", got, "5-5")
	}
}

func TestCandidate_DrawRanges(t *testing.T) {
	tests := []struct {
		name  string
		tier  Tier
		draws []int
		calls []int
		want  Problem
	}{
		{
			name:  "youngest add bounds num2 by 9-num1",
			tier:  TierYoungest,
			draws: []int{0, 5, 2},
			calls: []int{2, 8, 3},
			want:  Problem{Num1: 6, Num2: 3, Op: OpAdd, Answer: 9},
		},
		{
			name:  "middle subtract bounds num2 by num1",
			tier:  TierMiddle,
			draws: []int{1, 19, 7},
			calls: []int{2, 49, 20},
			want:  Problem{Num1: 20, Num2: 8, Op: OpSubtract, Answer: 12},
		},
		{
			name:  "middle add",
			tier:  TierMiddle,
			draws: []int{0, 39, 8},
			calls: []int{2, 40, 9},
			want:  Problem{Num1: 40, Num2: 9, Op: OpAdd, Answer: 49},
		},
		{
			name:  "oldest add",
			tier:  TierOldest,
			draws: []int{0, 79, 18},
			calls: []int{4, 80, 19},
			want:  Problem{Num1: 80, Num2: 19, Op: OpAdd, Answer: 99},
		},
		{
			name:  "oldest multiply",
			tier:  TierOldest,
			draws: []int{2, 11, 6},
			calls: []int{4, 12, 12},
			want:  Problem{Num1: 12, Num2: 7, Op: OpMultiply, Answer: 84},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &scriptedRand{draws: tt.draws}
			g := New(DefaultConfig(), WithRand(r))

			got := g.Candidate(tt.tier)
			if got != tt.want {
				t.Errorf("Candidate = %+v, want %+v", got, tt.want)
			}
			if len(r.calls) != len(tt.calls) {
				t.Fatalf("IntN calls = %v, want %v", r.calls, tt.calls)
			}
			for i := range tt.calls {
				if r.calls[i] != tt.calls[i] {
					t.Errorf("IntN call %d: n = %d, want %d", i, r.calls[i], tt.calls[i])
				}
			}
		})
	}
}

func TestGenerate_Invariants(t *testing.T) {
	g := seeded(42)

	for _, tier := range Tiers() {
		allowed := make(map[Operation]bool)
		for _, op := range tier.Operations() {
			allowed[op] = true
		}

		for i := 0; i < 5000; i++ {
			p := g.Generate(tier, NewSeenSet())

			if !allowed[p.Op] {
				t.Fatalf("%s: operator %q not allowed", tier, p.Op)
			}
			if p.Num1 < 1 || p.Num2 < 1 {
				t.Fatalf("%s: operands must be positive: %+v", tier, p)
			}

			switch p.Op {
			case OpAdd:
				if p.Answer != p.Num1+p.Num2 {
					t.Fatalf("%s: wrong sum %+v", tier, p)
				}
				if p.Answer >= tier.SumCeiling() {
					t.Fatalf("%s: sum %d not below %d", tier, p.Answer, tier.SumCeiling())
				}
			case OpSubtract:
				if p.Answer != p.Num1-p.Num2 {
					t.Fatalf("%s: wrong difference %+v", tier, p)
				}
				if p.Answer < 0 {
					t.Fatalf("%s: negative difference %+v", tier, p)
				}
			case OpMultiply:
				if p.Answer != p.Num1*p.Num2 {
					t.Fatalf("%s: wrong product %+v", tier, p)
				}
				if p.Num1 > 12 || p.Num2 > 12 {
					t.Fatalf("%s: factor out of range %+v", tier, p)
				}
			case OpDivide:
				if p.Num1%p.Num2 != 0 {
					t.Fatalf("%s: inexact division %+v", tier, p)
				}
				if p.Answer != p.Num1/p.Num2 {
					t.Fatalf("%s: wrong quotient %+v", tier, p)
				}
				if p.Answer < 1 || p.Answer > 12 {
					t.Fatalf("%s: quotient out of range %+v", tier, p)
				}
			}
		}
	}
}

func TestGenerate_SumCeilings(t *testing.T) {
	tests := []struct {
		tier Tier
		want int
	}{
		{TierYoungest, 10},
		{TierMiddle, 50},
		{TierOldest, 100},
	}
	for _, tt := range tests {
		if got := tt.tier.SumCeiling(); got != tt.want {
			t.Errorf("%s.SumCeiling() = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestGenerate_NoDuplicatesWithinSession(t *testing.T) {
	g := seeded(7)
	seen := NewSeenSet()

	got := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p := g.Generate(TierOldest, seen)
		fp := p.Fingerprint()
		if got[fp] {
			t.Fatalf("duplicate fingerprint %q on call %d", fp, i+1)
		}
		got[fp] = true
	}
	if seen.Len() != 10 {
		t.Errorf("seen.Len() = %d, want 10", seen.Len())
	}
}

func TestGenerate_SkipsSeenFingerprint(t *testing.T) {
	// First draw is 3+4 (already seen as 4+3), second is 5-2.
	r := &scriptedRand{draws: []int{0, 2, 3, 1, 4, 1}}
	obs := &countingObserver{}
	g := New(DefaultConfig(), WithRand(r), WithObserver(obs))

	seen := NewSeenSet()
	seen.Add(NewProblem(4, OpAdd, 3).Fingerprint())

	p := g.Generate(TierYoungest, seen)

	want := Problem{Num1: 5, Num2: 2, Op: OpSubtract, Answer: 3}
	if p != want {
		t.Fatalf("Generate = %+v, want %+v", p, want)
	}
	if obs.rejected != 1 || obs.accepted != 1 || obs.exhausted != 0 {
		t.Errorf("observer = %+v, want 1 rejected, 1 accepted", obs)
	}
	if seen.Len() != 2 {
		t.Errorf("seen.Len() = %d, want 2", seen.Len())
	}
}

func TestGenerate_ExhaustionFallback(t *testing.T) {
	obs := &countingObserver{}
	g := New(DefaultConfig(), WithSeed(3), WithObserver(obs))

	seen := NewSeenSet()
	for _, fp := range Space(TierYoungest) {
		seen.Add(fp)
	}
	before := seen.Len()

	p := g.Generate(TierYoungest, seen)

	if p.Op != OpAdd && p.Op != OpSubtract {
		t.Fatalf("unexpected operator %q", p.Op)
	}
	if p.Answer != p.Op.apply(p.Num1, p.Num2) {
		t.Errorf("answer mismatch: %+v", p)
	}
	if seen.Len() != before {
		t.Errorf("fallback must not record its fingerprint: len %d -> %d", before, seen.Len())
	}
	if obs.rejected != MaxAttempts {
		t.Errorf("rejected = %d, want %d", obs.rejected, MaxAttempts)
	}
	if obs.exhausted != 1 || obs.accepted != 0 {
		t.Errorf("observer = %+v, want exactly one exhaustion", obs)
	}
}

func TestGenerate_ExhaustedSubtractBranchStillTerminates(t *testing.T) {
	g := seeded(11)
	seen := NewSeenSet()
	for a := 1; a <= 9; a++ {
		for b := 1; b <= a; b++ {
			seen.Add(NewProblem(a, OpSubtract, b).Fingerprint())
		}
	}

	p := g.Generate(TierYoungest, seen)
	if p.Op != OpAdd && p.Op != OpSubtract {
		t.Fatalf("unexpected operator %q", p.Op)
	}
	if p.Answer < 0 {
		t.Errorf("negative answer: %+v", p)
	}
}

func TestGenerate_ResetAllowsRepeat(t *testing.T) {
	draws := []int{1, 4, 2} // 5 - 3
	g := New(DefaultConfig(), WithRand(&scriptedRand{draws: append([]int(nil), draws...)}))
	first := g.Generate(TierYoungest, NewSeenSet())

	g = New(DefaultConfig(), WithRand(&scriptedRand{draws: append([]int(nil), draws...)}))
	fresh := NewSeenSet()
	again := g.Generate(TierYoungest, fresh)

	if first.Fingerprint() != again.Fingerprint() {
		t.Fatalf("fingerprints differ: %q vs %q", first.Fingerprint(), again.Fingerprint())
	}
	if !fresh.Has(again.Fingerprint()) {
		t.Error("fresh seen-set should record the repeated fingerprint")
	}
}

func TestGenerate_CustomAttemptBound(t *testing.T) {
	obs := &countingObserver{}
	g := New(Config{MaxAttempts: 5}, WithRand(rand.New(rand.NewPCG(1, 2))), WithObserver(obs))

	seen := NewSeenSet()
	for _, fp := range Space(TierYoungest) {
		seen.Add(fp)
	}
	g.Generate(TierYoungest, seen)

	if obs.rejected != 5 {
		t.Errorf("rejected = %d, want 5", obs.rejected)
	}
}

func TestGenerate_UnknownTierUsesYoungestRule(t *testing.T) {
	g := seeded(5)
	for i := 0; i < 200; i++ {
		p := g.Generate(Tier(99), NewSeenSet())
		if p.Op != OpAdd && p.Op != OpSubtract {
			t.Fatalf("unexpected operator %q", p.Op)
		}
		if p.Op == OpAdd && p.Answer > 9 {
			t.Fatalf("sum %d exceeds youngest ceiling", p.Answer)
		}
	}
}
