package search

// expandCenters records, into found, the same Set bruteForce would
// produce, in O(n²): every palindromic substring is reachable by growing
// outwards from its own center, and once a non-alphanumeric rune enters
// the window every wider window contains it too, so expansion stops at
// the first mismatch or non-alphanumeric end.
func expandCenters(rs, folded []rune, minLength int, found Set) {
	n := len(folded)
	for c := 0; c < n; c++ {
		// Odd-length: single-rune center at c.
		expand(rs, folded, c, c, minLength, found)
		// Even-length: center between c and c+1.
		expand(rs, folded, c, c+1, minLength, found)
	}
}

// expand grows the window [l, r] outwards while both ends are
// alphanumeric and fold-equal, recording every state that spans at least
// minLength runes.
func expand(rs, folded []rune, l, r, minLength int, found Set) {
	for l >= 0 && r < len(folded) {
		if !alnum(folded[l]) || !alnum(folded[r]) || folded[l] != folded[r] {
			return
		}
		if r-l+1 >= minLength {
			found[string(rs[l:r+1])] = struct{}{}
		}
		l--
		r++
	}
}
