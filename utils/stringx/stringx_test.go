// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Table-driven tests for presence checks, prefix/suffix
//              helpers, optional string normalization and IsVowel.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestHasLength(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", false},
		{"single space", " ", true},
		{"normal string", "hello", true},
		{"unicode string", "こんにちは", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := HasLength(tt.input); result != tt.expected {
				t.Errorf("HasLength(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFromDefault(t *testing.T) {
	if got := FromDefault("", "fallback"); got != "fallback" {
		t.Errorf("FromDefault(\"\") = %q", got)
	}
	if got := FromDefault("value", "fallback"); got != "value" {
		t.Errorf("FromDefault(value) = %q", got)
	}
}

func TestEnsureBeginsWith(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		prefix   string
		expected string
	}{
		{"missing prefix", "hello", ">> ", ">> hello"},
		{"prefix present", ">> hello", ">> ", ">> hello"},
		{"partial prefix", "> hello", ">> ", ">> > hello"},
		{"empty input", "", "/", "/"},
		{"empty prefix", "hello", "", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := EnsureBeginsWith(tt.input, tt.prefix); result != tt.expected {
				t.Errorf("EnsureBeginsWith(%q, %q) = %q; want %q", tt.input, tt.prefix, result, tt.expected)
			}
		})
	}
}

func TestEnsureEndsWith(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		suffix   string
		expected string
	}{
		{"missing suffix", "/usr/local", "/", "/usr/local/"},
		{"suffix present", "/usr/local/", "/", "/usr/local/"},
		{"empty input", "", ";", ";"},
		{"unicode suffix", "Grüße", "!", "Grüße!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := EnsureEndsWith(tt.input, tt.suffix); result != tt.expected {
				t.Errorf("EnsureEndsWith(%q, %q) = %q; want %q", tt.input, tt.suffix, result, tt.expected)
			}
		})
	}
}

func TestEnsurePtrNil(t *testing.T) {
	if EnsureBeginsWithPtr(nil, ">") != nil {
		t.Error("EnsureBeginsWithPtr(nil) should be nil")
	}
	if EnsureEndsWithPtr(nil, ">") != nil {
		t.Error("EnsureEndsWithPtr(nil) should be nil")
	}

	s := "hello"
	if got := EnsureBeginsWithPtr(&s, ">> "); got == nil || *got != ">> hello" {
		t.Errorf("EnsureBeginsWithPtr(&%q) = %v", s, got)
	}
	if got := EnsureEndsWithPtr(&s, "!"); got == nil || *got != "hello!" {
		t.Errorf("EnsureEndsWithPtr(&%q) = %v", s, got)
	}
	if s != "hello" {
		t.Errorf("input mutated to %q", s)
	}
}

func TestNullToEmptyAndEmptyToNull(t *testing.T) {
	if got := NullToEmpty(nil); got != "" {
		t.Errorf("NullToEmpty(nil) = %q", got)
	}
	if got := EmptyToNull(""); got != nil {
		t.Errorf("EmptyToNull(\"\") = %v; want nil", *got)
	}

	for _, x := range []string{"a", " ", "hello", "世界"} {
		p := EmptyToNull(x)
		if p == nil {
			t.Fatalf("EmptyToNull(%q) = nil", x)
		}
		if got := NullToEmpty(p); got != x {
			t.Errorf("NullToEmpty(EmptyToNull(%q)) = %q", x, got)
		}
	}

	// the round trip also holds for the empty string
	if got := NullToEmpty(EmptyToNull("")); got != "" {
		t.Errorf("round trip of empty string = %q", got)
	}
}

func TestIsVowel(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{'a', true},
		{'E', true},
		{'i', true},
		{'O', true},
		{'u', true},
		{'z', false},
		{'Y', false},
		{'1', false},
		{' ', false},
		{'ä', false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if result := IsVowel(tt.input); result != tt.expected {
				t.Errorf("IsVowel(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}
