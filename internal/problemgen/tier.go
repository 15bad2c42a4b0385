package problemgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTier is returned by ParseTier for an unrecognized tier name.
var ErrUnknownTier = errors.New("unknown tier")

// Tier is a fixed difficulty configuration aimed at an age group.
type Tier int

const (
	TierYoungest Tier = iota // ages 2-4
	TierMiddle               // ages 4-8
	TierOldest               // ages 8+
)

// Tiers returns all tiers in display order.
func Tiers() []Tier {
	return []Tier{TierYoungest, TierMiddle, TierOldest}
}

// Valid reports whether t is one of the predefined tiers.
func (t Tier) Valid() bool {
	return t >= TierYoungest && t <= TierOldest
}

// String returns the age label used on the command line, e.g. "4-8".
func (t Tier) String() string {
	switch t {
	case TierYoungest:
		return "2-4"
	case TierMiddle:
		return "4-8"
	case TierOldest:
		return "8+"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// DisplayName returns the player-facing level name.
func (t Tier) DisplayName() string {
	switch t {
	case TierYoungest:
		return "Little Learners"
	case TierMiddle:
		return "Math Stars"
	case TierOldest:
		return "Math Masters"
	default:
		return "Unknown"
	}
}

// Tagline returns the short description shown under the level name.
func (t Tier) Tagline() string {
	switch t {
	case TierYoungest:
		return "Ages 2-4 • Super Easy!"
	case TierMiddle:
		return "Ages 4-8 • Fun Challenge!"
	case TierOldest:
		return "Ages 8+ • Expert Mode!"
	default:
		return ""
	}
}

// Operations returns the operators the tier draws from.
func (t Tier) Operations() []Operation {
	return ruleFor(t).ops
}

// SumCeiling returns the exclusive upper bound on addition results.
func (t Tier) SumCeiling() int {
	return ruleFor(t).addSumMax + 1
}

// ParseTier accepts an age label ("2-4", "4-8", "8+") or a tier keyword
// ("youngest", "middle", "oldest"), case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2-4", "youngest", "little", "little-learners":
		return TierYoungest, nil
	case "4-8", "middle", "stars", "math-stars":
		return TierMiddle, nil
	case "8+", "8", "oldest", "masters", "math-masters":
		return TierOldest, nil
	}
	return 0, fmt.Errorf("%w: %q (want 2-4, 4-8 or 8+)", ErrUnknownTier, s)
}

// tierRule holds the operand bounds for a tier. All bounds are inclusive.
type tierRule struct {
	ops []Operation

	// addition: num1 in [1, addFirstMax], num2 in [1, addSumMax-num1]
	addFirstMax int
	addSumMax   int

	// subtraction: num1 in [1, subFirstMax], num2 in [1, num1]
	subFirstMax int

	// multiplication factors and division divisor/quotient are in [1, factorMax]
	factorMax int
}

var tierRules = map[Tier]tierRule{
	TierYoungest: {
		ops:         []Operation{OpAdd, OpSubtract},
		addFirstMax: 8,
		addSumMax:   9,
		subFirstMax: 9,
	},
	TierMiddle: {
		ops:         []Operation{OpAdd, OpSubtract},
		addFirstMax: 40,
		addSumMax:   49,
		subFirstMax: 49,
	},
	TierOldest: {
		ops:         []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide},
		addFirstMax: 80,
		addSumMax:   99,
		subFirstMax: 99,
		factorMax:   12,
	},
}

// ruleFor returns the rule for t. Unknown tiers get the Youngest rule so
// generation never fails.
func ruleFor(t Tier) tierRule {
	if r, ok := tierRules[t]; ok {
		return r
	}
	return tierRules[TierYoungest]
}
