package problemgen

import (
	"fmt"
	"strconv"
)

// Operation is the arithmetic operator of a problem.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "*"
	OpDivide   Operation = "/"
)

// Commutative reports whether swapping the operands yields the same question.
func (o Operation) Commutative() bool {
	return o == OpAdd || o == OpMultiply
}

// Symbol returns the operator as shown to the learner.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return string(o)
	}
}

// Name returns a lower-case word for the operator, e.g. "add".
func (o Operation) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// apply computes num1 <op> num2. Division assumes an exact quotient.
func (o Operation) apply(num1, num2 int) int {
	switch o {
	case OpAdd:
		return num1 + num2
	case OpSubtract:
		return num1 - num2
	case OpMultiply:
		return num1 * num2
	case OpDivide:
		return num1 / num2
	default:
		return 0
	}
}

// Problem is a single arithmetic question with its precomputed answer.
type Problem struct {
	Num1   int
	Num2   int
	Op     Operation
	Answer int
}

// NewProblem builds a Problem, computing its answer from the operands.
func NewProblem(num1 int, op Operation, num2 int) Problem {
	return Problem{
		Num1:   num1,
		Num2:   num2,
		Op:     op,
		Answer: op.apply(num1, num2),
	}
}

// Fingerprint returns the de-duplication key for the problem.
// Operands of commutative operators are sorted so "3+7" and "7+3" collide;
// subtraction and division keep operand order.
func (p Problem) Fingerprint() string {
	a, b := p.Num1, p.Num2
	if p.Op.Commutative() && a > b {
		a, b = b, a
	}
	return strconv.Itoa(a) + string(p.Op) + strconv.Itoa(b)
}

// String renders the question, e.g. "12 ÷ 4".
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.Num1, p.Op.Symbol(), p.Num2)
}

// Check reports whether answer is the correct result.
func (p Problem) Check(answer int) bool {
	return answer == p.Answer
}

// SeenSet holds the fingerprints issued during one play session.
// The zero value is not usable; create one with NewSeenSet.
type SeenSet map[string]struct{}

// NewSeenSet returns an empty seen-set.
func NewSeenSet() SeenSet {
	return make(SeenSet)
}

// Has reports whether the fingerprint has already been issued.
func (s SeenSet) Has(fingerprint string) bool {
	_, ok := s[fingerprint]
	return ok
}

// Add records a fingerprint.
func (s SeenSet) Add(fingerprint string) {
	s[fingerprint] = struct{}{}
}

// Len returns the number of recorded fingerprints.
func (s SeenSet) Len() int {
	return len(s)
}
