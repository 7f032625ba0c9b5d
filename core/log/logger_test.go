// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formats and
//              error logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	nxerror "github.com/msto63/netext/core/error"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[WRN] shown") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatJSON)
	logger.WithName("observable").WithField("sender", "person").
		Debug("property changed", String("property", "Name"))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]interface{}{
		"level":    "debug",
		"message":  "property changed",
		"logger":   "observable",
		"sender":   "person",
		"property": "Name",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestWithDoesNotMutateOriginal(t *testing.T) {
	base, buf := newTestLogger(LevelInfo, FormatText)
	child := base.WithField("component", "cli")

	base.Info("from base")
	if strings.Contains(buf.String(), "component=cli") {
		t.Error("WithField() leaked into the original logger")
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), "[component=cli]") {
		t.Errorf("child output = %q", buf.String())
	}
}

func TestTextFieldsSorted(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatText)
	logger.Info("msg", Fields{"b": 2, "a": 1, "c": 3})

	if !strings.Contains(buf.String(), "[a=1 b=2 c=3]") {
		t.Errorf("fields not sorted: %q", buf.String())
	}
}

func TestConsoleColors(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatConsole)
	logger.Error("boom")

	out := buf.String()
	if !strings.HasPrefix(out, LevelError.Color()) || !strings.HasSuffix(out, "\033[0m\n") {
		t.Errorf("console output not colored: %q", out)
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity logs as info", nxerror.New("bad arg").WithCode(nxerror.CodeInvalidInput), "info"},
		{"medium severity logs as warn", nxerror.New("meh"), "warn"},
		{"high severity logs as error", nxerror.New("cfg").WithCode(nxerror.CodeConfigError), "error"},
		{"plain error logs as warn", errors.New("plain"), "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should have every level disabled")
	}
	logger.Error("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("Console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(Console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newTestLogger(LevelInfo, FormatText)
	SetDefault(logger)
	Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not used: %q", buf.String())
	}
}
