// File: format.go
// Title: Positional Template Formatting
// Description: FormatWith substitutes numbered placeholders such as {0} and
//              {1,-8:x} with arguments. Useful when the same argument appears
//              several times or templates come from configuration.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Bound alignment, strict verb grammar

package stringx

import (
	"fmt"
	"strconv"
	"strings"

	nxerror "github.com/msto63/netext/core/error"
	nxerrors "github.com/msto63/netext/core/errors"
)

// MaxAlignment bounds the absolute alignment of a placeholder
const MaxAlignment = 1000000

// maxVerbDigits keeps width and precision within what fmt accepts
const maxVerbDigits = 6

// FormatWith replaces placeholders in format with args.
//
// A placeholder has the form {index[,alignment][:verb]}:
//   - index selects the argument, starting at 0
//   - alignment pads the value with spaces to |alignment| runes, on the left
//     when positive and on the right when negative; |alignment| is at most
//     MaxAlignment
//   - verb is a fmt verb without the leading '%', e.g. {0:.2f} or {1:x}:
//     flags, optional width and precision, then one verb letter. Argument
//     indexes ([n]) and starred widths are rejected. Without a verb the value
//     is formatted with %v
//
// Literal braces are written as {{ and }}. A malformed template or an index
// without a matching argument returns an INVALID_FORMAT error.
func FormatWith(format string, args ...interface{}) (string, error) {
	var builder strings.Builder
	builder.Grow(len(format))

	for i := 0; i < len(format); {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				builder.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return "", formatError(format, i, "unclosed placeholder")
			}
			item, err := formatItem(format[i+1:i+1+end], args)
			if err != nil {
				return "", formatError(format, i, err.Error())
			}
			builder.WriteString(item)
			i += end + 2
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				builder.WriteByte('}')
				i += 2
				continue
			}
			return "", formatError(format, i, "unmatched closing brace")
		default:
			builder.WriteByte(c)
			i++
		}
	}

	return builder.String(), nil
}

// MustFormatWith is FormatWith that panics on a malformed template.
func MustFormatWith(format string, args ...interface{}) string {
	result, err := FormatWith(format, args...)
	if err != nil {
		panic(err)
	}
	return result
}

// formatItem renders the text between the braces of one placeholder
func formatItem(item string, args []interface{}) (string, error) {
	verb := ""
	if colon := strings.IndexByte(item, ':'); colon >= 0 {
		item, verb = item[:colon], item[colon+1:]
	}

	alignment := 0
	if comma := strings.IndexByte(item, ','); comma >= 0 {
		a, err := strconv.Atoi(strings.TrimSpace(item[comma+1:]))
		if err != nil {
			return "", fmt.Errorf("invalid alignment %q", item[comma+1:])
		}
		if a > MaxAlignment || a < -MaxAlignment {
			return "", fmt.Errorf("alignment %d exceeds %d", a, MaxAlignment)
		}
		alignment = a
		item = item[:comma]
	}

	index, err := parseIndex(strings.TrimSpace(item))
	if err != nil {
		return "", err
	}
	if index >= len(args) {
		return "", fmt.Errorf("argument index %d out of range (%d arguments)", index, len(args))
	}

	var value string
	if verb == "" {
		value = fmt.Sprint(args[index])
	} else {
		if !validVerb(verb) {
			return "", fmt.Errorf("invalid verb %q", verb)
		}
		value = fmt.Sprintf("%"+verb, args[index])
	}

	switch {
	case alignment > 0:
		value = PadLeft(value, alignment, ' ')
	case alignment < 0:
		value = PadRight(value, -alignment, ' ')
	}
	return value, nil
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing argument index")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid argument index %q", s)
		}
	}
	return strconv.Atoi(s)
}

// validVerb accepts flags, width and precision followed by one fmt verb
// letter. Digit runs are limited so fmt never reports a bad width.
func validVerb(verb string) bool {
	if verb == "" || !strings.ContainsRune(verbLetters, rune(verb[len(verb)-1])) {
		return false
	}

	digits := 0
	dot := false
	for _, r := range verb[:len(verb)-1] {
		switch {
		case r >= '0' && r <= '9':
			digits++
			if digits > maxVerbDigits {
				return false
			}
		case r == '.':
			if dot {
				return false
			}
			dot = true
			digits = 0
		case strings.ContainsRune(verbFlags, r) && !dot && digits == 0:
		default:
			return false
		}
	}
	return true
}

const (
	verbLetters = "bcdeEfFgGopqsTtUvxX"
	verbFlags   = "+-# "
)

func formatError(format string, position int, reason string) *nxerror.Error {
	return nxerrors.InvalidFormat(nxerrors.ModuleStringx, "format_with", format, reason).
		WithDetail("position", position)
}
