package check

import "unicode"

// Palindrome — normalized palindrome verdict
//
// Description:
//
//	Palindrome reports whether text reads the same forwards and backwards
//	after applying the normalization selected by opts. It is the verdict
//	behind phrase palindromes such as "Never odd or even", where casing
//	and punctuation are conventionally ignored.
//
// Algorithm Outline:
//  1. Empty text → false (defined, not vacuous).
//  2. If opts.StripNonAlnum, drop every ASCII rune outside [0-9A-Za-z].
//     Non-ASCII runes survive: the strip class is ASCII punctuation,
//     space and symbols only.
//  3. If opts.FoldCase, lowercase each remaining rune.
//  4. Compare the normalized rune sequence against its own reversal.
//
// A nil opts behaves as DefaultOptions (fold + strip). If normalization
// strips the text down to nothing ("!!!" with defaults), the verdict is
// false, consistent with rule 1.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) for the transient normalized copy
func Palindrome(text string, opts *Options) bool {
	if text == "" {
		return false
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	rs := []rune(text)
	if o.StripNonAlnum {
		kept := rs[:0]
		for _, r := range rs {
			if r < asciiLimit && !asciiAlnum(r) {
				continue
			}
			kept = append(kept, r)
		}
		rs = kept
	}
	if o.FoldCase {
		for i, r := range rs {
			rs[i] = unicode.ToLower(r)
		}
	}
	if len(rs) == 0 {
		return false
	}

	return mirrored(rs)
}

// Strict — exact palindrome verdict
//
// Description:
//
//	Strict reports whether text equals its own rune reversal with zero
//	normalization: case, spaces, and punctuation are all significant.
//	"a b a" is a strict palindrome; "Racecar" is not.
//
// Empty text → false.
//
// Complexity: O(n) time, O(n) memory for the rune view.
func Strict(text string) bool {
	if text == "" {
		return false
	}

	return mirrored([]rune(text))
}

// Number — decimal palindrome verdict
//
// Description:
//
//	Number reports whether the decimal form of n reads the same forwards
//	and backwards. Integer values are stringified once in canonical
//	base-10; DecimalString values are compared verbatim. No sign
//	stripping or zero-padding is applied, so Integer(-121) is false and
//	DecimalString("007") is false while DecimalString("0110") is true.
//
// A nil Numeric or an empty DecimalString yields false.
func Number(n Numeric) bool {
	if n == nil {
		return false
	}
	s := n.decimal()
	if s == "" {
		return false
	}

	return mirrored([]rune(s))
}

const asciiLimit = 128

// asciiAlnum reports whether r is an ASCII letter or digit.
func asciiAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// mirrored reports whether rs equals its own reversal, comparing from
// both ends inward without allocating a reversed copy.
func mirrored(rs []rune) bool {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		if rs[i] != rs[j] {
			return false
		}
	}

	return true
}
