package mirror_test

import (
	"testing"

	"github.com/katalvlaran/palindra/check"
	"github.com/katalvlaran/palindra/mirror"
	"github.com/stretchr/testify/assert"
)

// TestPalindrome_KnownWords verifies the mirroring rule on the classic
// fixtures: the last rune of the input is the single center of the output.
func TestPalindrome_KnownWords(t *testing.T) {
	cases := map[string]string{
		"hello":  "helloolleh",
		"python": "pythonnohtyp",
		"race":   "racecar",
		"mom":    "momom",
		"data":   "dataatad",
		"ab":     "aba",
		"abc":    "abcba",
		"AI":     "AIA",
	}
	for word, want := range cases {
		assert.Equal(t, want, mirror.Palindrome(word), "mirror of %q", word)
	}
}

// TestPalindrome_ShortLengthRule covers the documented edge rule: zero or
// one rune comes back unchanged.
func TestPalindrome_ShortLengthRule(t *testing.T) {
	assert.Equal(t, "", mirror.Palindrome(""), "empty word mirrors to empty")
	assert.Equal(t, "a", mirror.Palindrome("a"), "single rune is its own mirror")
	assert.Equal(t, "é", mirror.Palindrome("é"), "single multi-byte rune unchanged")
}

// TestPalindrome_AlwaysStrict is the construction guarantee: the output
// is a strict palindrome for every non-empty input, case and all.
func TestPalindrome_AlwaysStrict(t *testing.T) {
	words := []string{"a", "ab", "abc", "Hello", "A man", "12 3", "éxo", "race", "!?"}
	for _, w := range words {
		out := mirror.Palindrome(w)
		assert.True(t, check.Strict(out), "mirror of %q must be strictly palindromic, got %q", w, out)
	}
}

// TestPalindrome_RuneAware verifies that multi-byte runes mirror as whole
// characters, never as split bytes.
func TestPalindrome_RuneAware(t *testing.T) {
	assert.Equal(t, "héllolléh", mirror.Palindrome("héllo"), "é must survive the mirror intact")
}

// TestEach applies the mirror element-wise, preserving order.
func TestEach(t *testing.T) {
	got := mirror.Each([]string{"mom", "data", ""})
	assert.Equal(t, []string{"momom", "dataatad", ""}, got, "element-wise mirrors in input order")

	assert.Nil(t, mirror.Each(nil), "nil slice yields nil")
	assert.Equal(t, []string{}, mirror.Each([]string{}), "empty slice yields empty slice")
}
