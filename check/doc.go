// Package check answers one question three ways: is this thing a palindrome?
//
// 🚀 What is check?
//
//	A trio of pure verdict functions over in-memory values:
//	  • Palindrome — phrase verdict under configurable normalization
//	    (case folding, stripping of ASCII punctuation/space)
//	  • Strict     — exact rune-for-rune mirror test, zero normalization
//	  • Number     — decimal mirror test over a tagged Integer | DecimalString
//
// ✨ Key features:
//   - total functions: any input yields a verdict, never a panic or error
//   - empty input is defined to be false, not vacuously true
//   - rune-aware reversal: multi-byte characters are compared whole
//   - normalization order is fixed: strip first, then fold case
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/palindra/check"
//
//	opts := check.DefaultOptions()         // fold case + strip punctuation
//	check.Palindrome("A man a plan a canal Panama", &opts) // true
//
//	check.Strict("racecar")                // true
//	check.Strict("Racecar")                // false — case matters here
//
//	check.Number(check.Integer(12321))     // true
//	check.Number(check.Integer(-121))      // false — the sign participates
//
// Performance:
//
//   - Time:   O(n) per verdict, single pass plus reversal compare
//   - Memory: O(n) for the transient normalized copy
//
// See examples in example_test.go.
package check
