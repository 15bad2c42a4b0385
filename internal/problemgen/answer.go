package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAnswer is returned by ParseAnswer for input that is not a
// whole number.
var ErrInvalidAnswer = errors.New("invalid answer")

// maxAnswerDigits bounds learner input; no tier produces more than three digits.
const maxAnswerDigits = 4

// ParseAnswer converts raw learner input into an integer answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored (e.g., "007" is 7)
// - Only the digits 0-9 are accepted; signs, decimals and letters are rejected
func ParseAnswer(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAnswer)
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidAnswer, input)
		}
	}
	trimmed := strings.TrimLeft(input, "0")
	if len(trimmed) > maxAnswerDigits {
		return 0, fmt.Errorf("%w: %q is too long", ErrInvalidAnswer, input)
	}
	if trimmed == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
	}
	return n, nil
}
