package search_test

import (
	"fmt"

	"github.com/katalvlaran/palindra/search"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePalindromes
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Enumerate every palindromic substring of "racecar" at the default
//	threshold (MinLength 3). The Set is unordered; Sorted() gives the
//	presentation order: longest first.
//
// Use case:
//
//	Word-game analysis and teaching demos.
//
// Complexity: O(n³) time (BruteForce), O(n) memory per candidate
func ExamplePalindromes() {
	found, err := search.Palindromes("racecar", nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(found.Sorted())
	// Output:
	// [racecar aceca cec]
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePalindromes_phrase
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A longer phrase hides palindromes inside individual words; spaces and
//	punctuation never appear inside a result (the alnum filter drops any
//	candidate that spans them).
//
// Options:
//   - MinLength = 4          (skip three-rune mirrors)
//   - Algorithm = ExpandCenters (O(n²), identical output)
func ExamplePalindromes_phrase() {
	opts := search.DefaultOptions()
	opts.MinLength = 4
	opts.Algorithm = search.ExpandCenters

	found, err := search.Palindromes("The racecar driver saw a kayak at noon", &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(found.Sorted())
	// Output:
	// [racecar aceca kayak noon]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSet_Contains
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Membership queries against the result Set.
func ExampleSet_Contains() {
	found, _ := search.Palindromes("abba noon level", nil)

	fmt.Println(found.Contains("noon"))
	fmt.Println(found.Contains("ab"))
	// Output:
	// true
	// false
}
