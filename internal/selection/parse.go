package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat marks input that is not all, none or a list of numbers.
	ErrInvalidFormat = errors.New("invalid selection format")
	// ErrOutOfRange marks a number outside the group's display range.
	ErrOutOfRange = errors.New("selection out of range")
)

// Range is the inclusive span of display numbers assigned to one group.
type Range struct {
	First int
	Last  int
}

// Empty reports whether the range holds no numbers.
func (r Range) Empty() bool { return r.Last < r.First }

// Len returns how many numbers the range holds.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

// Contains reports whether n lies inside the range.
func (r Range) Contains(n int) bool { return n >= r.First && n <= r.Last }

// InputError describes a rejected selection.
type InputError struct {
	Token string
	Value int
	Range Range
	Err   error
}

func (e *InputError) Error() string {
	if errors.Is(e.Err, ErrOutOfRange) {
		return fmt.Sprintf("%v: %d not in %d-%d", e.Err, e.Value, e.Range.First, e.Range.Last)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *InputError) Unwrap() error { return e.Err }

// Parse interprets a selection string against r and returns the chosen display
// numbers in input order without duplicates. "all" selects the whole range;
// "none" and empty input select nothing. A malformed token is reported before
// any out-of-range number, and either rejects the whole input.
func Parse(input string, r Range) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	switch strings.ToLower(trimmed) {
	case "":
		return nil, nil
	case "none":
		return nil, nil
	case "all":
		numbers := make([]int, 0, r.Len())
		for n := r.First; n <= r.Last; n++ {
			numbers = append(numbers, n)
		}
		return numbers, nil
	}

	tokens := strings.Split(trimmed, ",")
	values := make([]int, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, &InputError{Token: token, Range: r, Err: ErrInvalidFormat}
		}
		values = append(values, n)
	}

	seen := make(map[int]struct{}, len(values))
	numbers := make([]int, 0, len(values))
	for _, n := range values {
		if !r.Contains(n) {
			return nil, &InputError{Token: strconv.Itoa(n), Value: n, Range: r, Err: ErrOutOfRange}
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
