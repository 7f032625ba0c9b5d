// File: replace.go
// Title: Sequential Replace and Remove
// Description: Multi-value replace and remove. Replacements run one after
//              another in the given order, so a later replacement sees the
//              text produced by an earlier one.
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
)

// Replacement is one step of a sequential replace.
type Replacement struct {
	Old string
	New string
}

// ReplaceSequential applies pairs to s in order, each replacing every
// occurrence of Old with New in the result of the previous step. Pairs with
// an empty Old are skipped.
//
//	ReplaceSequential("ab", Replacement{"a", "b"}, Replacement{"b", "c"}) // "cc"
func ReplaceSequential(s string, pairs ...Replacement) string {
	for _, p := range pairs {
		if p.Old == "" {
			continue
		}
		s = strings.ReplaceAll(s, p.Old, p.New)
	}
	return s
}

// Replace replaces every occurrence of each of oldValues with newValue,
// one old value at a time in the listed order. Empty old values are skipped.
func Replace(s, newValue string, oldValues ...string) string {
	for _, old := range oldValues {
		if old == "" {
			continue
		}
		s = strings.ReplaceAll(s, old, newValue)
	}
	return s
}

// Remove deletes every occurrence of each of values from s, in order.
func Remove(s string, values ...string) string {
	return Replace(s, "", values...)
}

// RemoveRight strips exactly one trailing occurrence of value from s. When s
// does not end with value, or value is empty, s is returned unchanged.
func RemoveRight(s, value string) string {
	return strings.TrimSuffix(s, value)
}

// RemoveRightPtr is RemoveRight for optional strings: nil stays nil.
func RemoveRightPtr(s *string, value string) *string {
	if s == nil {
		return nil
	}
	result := RemoveRight(*s, value)
	return &result
}
