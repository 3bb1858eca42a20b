// Package search enumerates the palindromic substrings of a text.
//
// What:
//
//   - Palindromes scans a text and returns the Set of unique substrings
//     that are palindromic when case-folded, contain only alphanumeric
//     runes, and meet a minimum length threshold.
//   - Results keep their original casing; deduplication is by exact
//     string identity; iteration order is unspecified (set semantics).
//   - Two interchangeable algorithms produce the identical Set:
//     BruteForce (the reference scan) and ExpandCenters (faster).
//
// Why:
//
//   - Word games: every hidden palindrome in a phrase, at a glance.
//   - Teaching: BruteForce is the textbook O(n³) enumeration; ExpandCenters
//     shows the classic O(n²) refinement with the same contract.
//   - Text curios: "The racecar driver saw a kayak at noon" hides three.
//
// Complexity:
//
//   - BruteForce:    O(n³) time, O(n) per-candidate memory.
//   - ExpandCenters: O(n²) time, O(n) memory.
//
// Options:
//
//   - Options.MinLength: smallest substring length (in runes) to report; default 3.
//   - Options.Algorithm: BruteForce or ExpandCenters.
//
// Errors:
//
//   - ErrMinLength: MinLength below 1.
//   - ErrUnknownAlgorithm: Algorithm value outside the enum.
//
// Substrings containing spaces or punctuation are dropped by construction,
// even when they would otherwise mirror ("a b a" yields nothing); no
// normalization option is exposed here.
package search
