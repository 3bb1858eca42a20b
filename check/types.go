// Package check defines options and the numeric variant types for
// palindrome verdicts.
package check

import "strconv"

// Options configures the normalized palindrome verdict.
//
// Fields:
//   - FoldCase      — lowercase the text before comparing, so "Level"
//     and "level" receive the same verdict.
//   - StripNonAlnum — drop every ASCII character that is not a letter or
//     digit (punctuation, spaces, symbols) before comparing. Non-ASCII
//     runes are left in place; the strip class is ASCII-only.
//
// Normalization order is fixed: strip first, then fold.
//
// Example:
//
//	opts := Options{FoldCase: true, StripNonAlnum: false}
//	Palindrome("a b a", &opts) // true — spaces kept, and they mirror
//	Palindrome("ab a", &opts)  // false
type Options struct {
	FoldCase      bool
	StripNonAlnum bool
}

// DefaultOptions returns the permissive phrase-checking defaults:
// fold case and strip ASCII punctuation/space, so classic phrase
// palindromes like "A man a plan a canal Panama" pass.
func DefaultOptions() Options {
	return Options{
		FoldCase:      true,
		StripNonAlnum: true,
	}
}

// Numeric is the tagged variant accepted by Number: either an Integer or
// a DecimalString. Stringification happens exactly once, at this boundary;
// after that the verdict is plain character comparison with no numeric
// semantics (no sign stripping, no leading-zero handling).
//
// The interface is sealed: only Integer and DecimalString satisfy it.
type Numeric interface {
	decimal() string
}

// Integer is an integer checked in its canonical base-10 form.
// Negative values carry their minus sign into the comparison, so
// Integer(-121) is not a palindrome ("-121" vs "121-").
type Integer int64

// DecimalString is a caller-supplied decimal representation, compared
// verbatim. Content is not validated: "0110" and "007" are legal inputs
// and follow plain character comparison, mirroring the permissive
// stringify-and-compare contract.
type DecimalString string

func (n Integer) decimal() string       { return strconv.FormatInt(int64(n), 10) }
func (s DecimalString) decimal() string { return string(s) }
