package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pang.log")

	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	logger.Debug("ball spawned", "x", 100)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "ball spawned") || !strings.Contains(out, "pang") {
		t.Errorf("log file missing entry, got %q", out)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, closeLog, err := newLogger("", tt.level)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger() error: %v", err)
			}
			defer closeLog()
			if logger.GetLevel() != tt.want {
				t.Errorf("level = %v, expected %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pang.log")

	if _, _, err := newLogger(path, "info"); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
