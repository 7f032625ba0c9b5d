// File: right.go
// Title: Trailing Slice and Padding
// Description: Right returns the last n characters of a string, RightPad
//              additionally left-pads the result to exactly n characters.
//              Lengths count runes, not bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"

	nxerrors "github.com/msto63/netext/core/errors"
)

// Right returns the trailing length runes of s. If s is shorter than length
// the whole string is returned. A length of zero or less is rejected with a
// VALUE_OUT_OF_RANGE error.
func Right(s string, length int) (string, error) {
	if length <= 0 {
		return "", nxerrors.OutOfRange(nxerrors.ModuleStringx, "right", length, 1, nil)
	}
	return trailing(s, length), nil
}

// MustRight is Right that panics on an invalid length.
func MustRight(s string, length int) string {
	result, err := Right(s, length)
	if err != nil {
		panic(err)
	}
	return result
}

// RightPad returns the trailing length runes of s, left-padded with pad so
// the result always has exactly length runes.
//
//	RightPad("42", 5, '0')  // "00042"
//	RightPad("", 4, '0')    // "0000"
func RightPad(s string, length int, pad rune) (string, error) {
	if length <= 0 {
		return "", nxerrors.OutOfRange(nxerrors.ModuleStringx, "right_pad", length, 1, nil)
	}
	return PadLeft(trailing(s, length), length, pad), nil
}

// trailing walks back from the end of s; length must be positive.
func trailing(s string, length int) string {
	i := len(s)
	for n := 0; n < length && i > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}

// PadLeft pads s on the left with pad until it is width runes long. Strings
// already at or beyond width are returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + missing*utf8.UTFMax)
	for i := 0; i < missing; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)
	return builder.String()
}

// PadRight pads s on the right with pad until it is width runes long.
func PadRight(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + missing*utf8.UTFMax)
	builder.WriteString(s)
	for i := 0; i < missing; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}
