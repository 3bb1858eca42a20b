// Package search defines options, errors and the result Set for
// palindromic-substring enumeration.
package search

import (
	"errors"
	"sort"
)

// Sentinel errors for option validation.
var (
	// ErrMinLength is returned when Options.MinLength is below 1.
	ErrMinLength = errors.New("search: MinLength must be at least 1")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the enum.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects the enumeration strategy. Both members honor the
// same contract and return the identical Set for any input; they differ
// only in running time.
//
//   - BruteForce    — examine every (start, end) pair and test the slice.
//     Time O(n³). The reference algorithm, kept for its transparency.
//
//   - ExpandCenters — grow outwards from each of the 2n-1 centers while
//     both ends keep matching. Time O(n²).
type Algorithm int

const (
	// BruteForce mode: test every candidate slice directly. O(n³) time.
	BruteForce Algorithm = iota

	// ExpandCenters mode: expand around every center. O(n²) time.
	ExpandCenters
)

// Options configures palindromic-substring enumeration.
//
// Fields:
//   - MinLength — smallest substring length, counted in runes, that may
//     appear in the result. Must be at least 1.
//   - Algorithm — BruteForce or ExpandCenters.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.MinLength = 5
//	found, err := Palindromes("The racecar driver saw a kayak at noon", &opts)
type Options struct {
	MinLength int
	Algorithm Algorithm
}

// DefaultOptions returns the conventional settings: MinLength 3 (skip the
// trivial one- and two-rune mirrors) and the BruteForce reference algorithm.
func DefaultOptions() Options {
	return Options{
		MinLength: 3,
		Algorithm: BruteForce,
	}
}

// Set is an unordered collection of unique palindromic substrings,
// keyed by exact string identity with original casing preserved.
type Set map[string]struct{}

// Contains reports whether v is in the Set.
func (s Set) Contains(v string) bool {
	_, ok := s[v]

	return ok
}

// Sorted returns the Set's members ordered by descending length, ties
// broken lexicographically. The Set itself is unordered; call Sorted
// when presentation needs determinism.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}

		return out[i] < out[j]
	})

	return out
}
