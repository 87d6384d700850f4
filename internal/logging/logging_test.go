package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"unknown", LevelInfo}, // Default to Info
		{"", LevelInfo},        // Default to Info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	Setup(LevelInfo, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Errorf("output should contain INFO, got %q", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("output should contain message, got %q", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("output should contain attributes, got %q", output)
	}
}

func TestSetupLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	Setup(LevelWarn, &buf)

	Info("suppressed")
	Warn("visible")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Errorf("info message should be filtered at warn level, got %q", output)
	}
	if !strings.Contains(output, "visible") {
		t.Errorf("warn message should pass at warn level, got %q", output)
	}
}

func TestActionLogRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l := NewActionLog(path)
	l.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	}

	l.Record("install", nil)
	l.Record("uninstall", errors.New("apt-get failed"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if lines[0] != "2024-06-01 12:30:00 install: ok" {
		t.Errorf("line[0] = %q", lines[0])
	}
	if lines[1] != "2024-06-01 12:30:00 uninstall: failed: apt-get failed" {
		t.Errorf("line[1] = %q", lines[1])
	}
}

func TestActionLogDisabled(t *testing.T) {
	// An empty path disables recording without error.
	l := NewActionLog("")
	l.Record("install", nil)

	// A nil log is also safe.
	var nilLog *ActionLog
	nilLog.Record("install", nil)
}
