// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides small string helpers that remove
//              repeated length and prefix checks from call sites.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package stringx provides composable string helpers for netext.
//
// Overview
//
// Every function is pure and works on the empty string. Where a helper
// needs an "absent" value distinct from "", it takes or returns a *string
// (EnsureBeginsWithPtr, EnsureEndsWithPtr, NullToEmpty, EmptyToNull).
// Lengths are counted in runes.
//
// Groups:
//
//   - Presence: HasLength, IsEmpty, IsBlank, FromDefault
//   - Prefix/suffix: EnsureBeginsWith, EnsureEndsWith, RemoveRight
//   - Trailing slice: Right, RightPad, MustRight, PadLeft, PadRight
//   - Replace: Replace, ReplaceSequential, Remove
//   - Formatting: FormatWith, MustFormatWith
//   - Optional strings: NullToEmpty, EmptyToNull
//   - Characters: IsVowel
//
// Usage Examples
//
//	stringx.EnsureBeginsWith("hello", ">> ")      // ">> hello"
//	stringx.RemoveRight("1234567890123", "123")   // "1234567890"
//
//	last, err := stringx.Right("1234567890123", 3) // "123", nil
//	_, err = stringx.Right("abc", 0)               // VALUE_OUT_OF_RANGE
//
//	stringx.RightPad("7", 3, '0')                  // "007", nil
//
//	// Sequential: "a"->"b" runs first, then "b"->"c" sees its output.
//	stringx.ReplaceSequential("ab",
//	    stringx.Replacement{Old: "a", New: "b"},
//	    stringx.Replacement{Old: "b", New: "c"})   // "cc"
//
//	stringx.FormatWith("{0} has {1,3} items, {0}!", "cart", 7)
//	// "cart has   7 items, cart!"
//
// Error Handling
//
// Right, RightPad and FormatWith return *error.Error values from
// github.com/msto63/netext/core/error with codes VALUE_OUT_OF_RANGE and
// INVALID_FORMAT. The Must* variants panic with the same error.
package stringx
