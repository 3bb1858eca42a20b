// Package mirror synthesizes palindromes from ordinary words.
//
// A word is mirrored around its own last rune: the reverse of everything
// before that rune is appended, so the last rune becomes the single
// center of the result ("race" → "racecar", "hello" → "helloolleh").
// The output is a strict palindrome by construction for every input.
//
// Usage:
//
//	import "github.com/katalvlaran/palindra/mirror"
//
//	mirror.Palindrome("race")  // "racecar"
//	mirror.Palindrome("a")     // "a"
//	mirror.Each([]string{"mom", "data"}) // ["momom", "dataatad"]
//
// Complexity: O(n) time and memory per word.
package mirror
