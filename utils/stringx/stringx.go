// File: stringx.go
// Title: Core String Utility Functions
// Description: Presence checks, conditional prefix/suffix insertion,
//              null/empty normalization and the vowel test. Every function
//              is pure and safe on the empty string.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.1.1: Pointer forms of EnsureBeginsWith/EnsureEndsWith

package stringx

import (
	"strings"
	"unicode"
)

// HasLength reports whether s contains at least one byte. It reads better
// than len(s) > 0 at call sites that test optional values.
func HasLength(s string) bool {
	return len(s) > 0
}

// IsEmpty returns true if the string has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FromDefault returns s if it is not empty, otherwise defaultValue.
func FromDefault(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// EnsureBeginsWith returns s unchanged when it already starts with prefix,
// otherwise prefix + s.
func EnsureBeginsWith(s, prefix string) string {
	if strings.HasPrefix(s, prefix) {
		return s
	}
	return prefix + s
}

// EnsureBeginsWithPtr is EnsureBeginsWith for optional strings: nil stays nil.
func EnsureBeginsWithPtr(s *string, prefix string) *string {
	if s == nil {
		return nil
	}
	result := EnsureBeginsWith(*s, prefix)
	return &result
}

// EnsureEndsWith returns s unchanged when it already ends with suffix,
// otherwise s + suffix.
func EnsureEndsWith(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		return s
	}
	return s + suffix
}

// EnsureEndsWithPtr is EnsureEndsWith for optional strings: nil stays nil.
func EnsureEndsWithPtr(s *string, suffix string) *string {
	if s == nil {
		return nil
	}
	result := EnsureEndsWith(*s, suffix)
	return &result
}

// NullToEmpty dereferences s, mapping nil to "".
func NullToEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// EmptyToNull maps "" to nil and any other value to a pointer to a copy.
func EmptyToNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IsVowel reports whether r is one of a, e, i, o, u in either case.
func IsVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}
