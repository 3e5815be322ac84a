package questiongen

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned by ParseRange for values outside RangeOptions.
var ErrInvalidRange = errors.New("invalid number range")

// RangeOptions are the number ranges offered to players.
var RangeOptions = []int{10, 20, 50, 100}

// DefaultRange is the range used when none is chosen.
const DefaultRange = 10

// MinRange is the smallest range with enough values for 4 distinct options.
const MinRange = OptionCount - 1

// OptionCount is the number of answer options per question.
const OptionCount = 4

// Config controls distractor generation.
type Config struct {
	// DistractorSpread is the maximum distance of a close distractor
	// from the correct answer.
	DistractorSpread int

	// MaxCloseAttempts bounds the close-distractor search before
	// falling back to uniform sampling over the whole range.
	MaxCloseAttempts int
}

// DefaultConfig returns the standard distractor settings.
func DefaultConfig() Config {
	return Config{
		DistractorSpread: 5,
		MaxCloseAttempts: 100,
	}
}

// ParseRange resolves a user-supplied range and checks it against RangeOptions.
func ParseRange(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultRange, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidRange, s)
	}
	return ValidateRange(n)
}

// ValidateRange returns n if it is one of RangeOptions.
func ValidateRange(n int) (int, error) {
	if !slices.Contains(RangeOptions, n) {
		return 0, fmt.Errorf("%w %d: must be one of %v", ErrInvalidRange, n, RangeOptions)
	}
	return n, nil
}
