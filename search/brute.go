package search

// bruteForce enumerates every (start, end) pair over the folded runes and
// records, into found, the original-case slice of each candidate that is
// fully alphanumeric and equal to its own reversal. The reference
// implementation of the Palindromes contract; O(n³) worst case.
func bruteForce(rs, folded []rune, minLength int, found Set) {
	n := len(folded)
	for i := 0; i < n; i++ {
		for j := i + minLength; j <= n; j++ {
			if candidate(folded[i:j]) {
				found[string(rs[i:j])] = struct{}{}
			}
		}
	}
}

// candidate reports whether the folded slice passes both filters:
// every rune alphanumeric, and the slice mirrored.
func candidate(sub []rune) bool {
	for _, r := range sub {
		if !alnum(r) {
			return false
		}
	}

	return mirrored(sub)
}
