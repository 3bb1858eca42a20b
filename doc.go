// Package palindra is your in-memory playground for checking, hunting,
// and forging palindromes — from strict character mirrors to normalized
// phrase verdicts and substring enumeration.
//
// 🚀 What is palindra?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Verdicts: strict, normalized (case/punctuation aware) and numeric checks
//		• Search: enumerate every palindromic substring above a length threshold
//		• Synthesis: mirror any word into a guaranteed strict palindrome
//
// ✨ Why choose palindra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, no shared state, safe under any concurrency
//   - Pure Go – no cgo, no hidden deps
//   - Rune-aware – multi-byte characters are never split mid-glyph
//
// Under the hood, everything is organized under three subpackages:
//
//	check/  — strict, normalized and numeric palindrome verdicts
//	search/ — palindromic-substring enumeration with pluggable algorithms
//	mirror/ — palindrome synthesis by mirroring a word around its last rune
//
// Quick ASCII example:
//
//	race   →   racecar
//	 └── mirror ──┘
//
//	"A man a plan a canal Panama"  →  normalize  →  "amanaplanacanalpanama"  →  ✓
//
// Every operation is a single-pass, input-to-output transformation over its
// own arguments; nothing blocks, suspends, or mutates shared state, so all
// calls are independently safe from any number of goroutines.
//
//	go get github.com/katalvlaran/palindra
package palindra
