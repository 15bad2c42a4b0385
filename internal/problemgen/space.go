package problemgen

import "sort"

// Space returns every fingerprint the tier can produce, sorted.
func Space(tier Tier) []string {
	r := ruleFor(tier)
	set := NewSeenSet()

	for _, op := range r.ops {
		switch op {
		case OpAdd:
			for a := 1; a <= r.addFirstMax; a++ {
				for b := 1; b <= r.addSumMax-a; b++ {
					set.Add(NewProblem(a, op, b).Fingerprint())
				}
			}
		case OpSubtract:
			for a := 1; a <= r.subFirstMax; a++ {
				for b := 1; b <= a; b++ {
					set.Add(NewProblem(a, op, b).Fingerprint())
				}
			}
		case OpMultiply:
			for a := 1; a <= r.factorMax; a++ {
				for b := 1; b <= r.factorMax; b++ {
					set.Add(NewProblem(a, op, b).Fingerprint())
				}
			}
		case OpDivide:
			for d := 1; d <= r.factorMax; d++ {
				for q := 1; q <= r.factorMax; q++ {
					set.Add(NewProblem(d*q, op, d).Fingerprint())
				}
			}
		}
	}

	out := make([]string, 0, set.Len())
	for fp := range set {
		out = append(out, fp)
	}
	sort.Strings(out)
	return out
}
