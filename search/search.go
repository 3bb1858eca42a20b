package search

import (
	"fmt"
	"unicode"
)

// Palindromes — palindromic-substring enumeration
//
// Description:
//
//	Palindromes returns the Set of unique substrings of text that
//	  1. span at least opts.MinLength runes,
//	  2. consist entirely of alphanumeric runes (no spaces, no punctuation),
//	  3. read the same forwards and backwards once case-folded.
//	Accepted substrings enter the Set with their ORIGINAL casing; the
//	fold is only for the mirror test. Two positions yielding the same
//	text collapse into one entry.
//
// Algorithm Outline (BruteForce):
//  1. Fold the text rune-by-rune to lowercase.
//  2. For every start index i and every end index j ≥ i+MinLength,
//     take folded[i:j]; accept iff all runes alphanumeric and the slice
//     equals its reversal; on accept, insert original text[i:j].
//
// ExpandCenters honors the identical contract in O(n²): from each of the
// 2n-1 centers, grow while both ends are alphanumeric and fold-equal,
// recording every expansion state that reaches MinLength.
//
// Short-circuit: empty text, or text shorter than MinLength in runes,
// yields an empty (non-nil) Set with no error.
//
// Complexity:
//
//	Time   = O(n³) (BruteForce) or O(n²) (ExpandCenters)
//	Memory = O(n + |result|)
//
// Errors:
//   - ErrMinLength        — opts.MinLength < 1.
//   - ErrUnknownAlgorithm — opts.Algorithm outside the enum.
func Palindromes(text string, opts *Options) (Set, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MinLength < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMinLength, o.MinLength)
	}

	found := make(Set)
	rs := []rune(text)
	if len(rs) < o.MinLength {
		return found, nil
	}

	// Fold once, per rune, so original and folded views stay index-aligned.
	folded := make([]rune, len(rs))
	for i, r := range rs {
		folded[i] = unicode.ToLower(r)
	}

	switch o.Algorithm {
	case BruteForce:
		bruteForce(rs, folded, o.MinLength, found)
	case ExpandCenters:
		expandCenters(rs, folded, o.MinLength, found)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(o.Algorithm))
	}

	return found, nil
}

// alnum reports whether r counts as alphanumeric for the filter:
// any letter or numeric rune.
func alnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// mirrored reports whether rs equals its own reversal.
func mirrored(rs []rune) bool {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		if rs[i] != rs[j] {
			return false
		}
	}

	return true
}
