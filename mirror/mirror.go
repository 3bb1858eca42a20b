package mirror

// Palindrome — palindrome synthesis by mirroring
//
// Description:
//
//	Palindrome mirrors word around its own last rune:
//
//	  result = word + reverse(word without its final rune)
//
//	so the final rune of the input becomes the single center of the
//	output, which is a strict palindrome by construction for any input.
//
// Short-length rule: a word of zero or one rune is returned unchanged —
// the general rule degenerates to exactly that, stated here once so the
// edge case is explicit rather than incidental.
//
// Examples:
//
//	Palindrome("hello") // "helloolleh"
//	Palindrome("race")  // "racecar"
//	Palindrome("a")     // "a"
//	Palindrome("")      // ""
//
// Complexity: O(n) time and memory.
func Palindrome(word string) string {
	rs := []rune(word)
	n := len(rs)
	if n <= 1 {
		return word
	}

	out := make([]rune, 0, 2*n-1)
	out = append(out, rs...)
	for i := n - 2; i >= 0; i-- {
		out = append(out, rs[i])
	}

	return string(out)
}

// Each applies Palindrome to every word in order and returns the results.
// A nil slice yields a nil slice.
func Each(words []string) []string {
	if words == nil {
		return nil
	}

	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Palindrome(w)
	}

	return out
}
