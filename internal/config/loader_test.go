package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// isolate points the home and working directories at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "custom.yaml")
	writeFile(t, path, "display:\n  tick_rate: 60\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("tick rate = %d, expected 60", cfg.Display.TickRate)
	}
	if cfg.Display.CanvasWidth != 640 || cfg.Input.InitialHoldMs != 500 {
		t.Errorf("unset values should keep their defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	broken := filepath.Join(work, "broken.yaml")
	writeFile(t, broken, "display: [not, a, map\n")
	invalid := filepath.Join(work, "invalid.yaml")
	writeFile(t, invalid, "display:\n  tick_rate: 0\n")

	tests := []struct {
		name        string
		path        string
		wantInvalid bool
	}{
		{"missing file", filepath.Join(work, "missing.yaml"), false},
		{"broken yaml", broken, false},
		{"invalid value", invalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrInvalid) != tt.wantInvalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)",
					errors.Is(err, ErrInvalid), tt.wantInvalid, err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	userPath := filepath.Join(home, ".pang", "config.yaml")
	localPath := filepath.Join(work, "configs", "pang.yaml")

	writeFile(t, userPath, "display:\n  tick_rate: 60\n")
	writeFile(t, localPath, "display:\n  tick_rate: 45\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("user config should win, tick rate = %d", cfg.Display.TickRate)
	}

	// A broken user file falls through to the local one
	writeFile(t, userPath, "display: [\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 45 {
		t.Errorf("local config should be used, tick rate = %d", cfg.Display.TickRate)
	}

	// So does an invalid one
	writeFile(t, userPath, "display:\n  tick_rate: -1\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 45 {
		t.Errorf("local config should be used, tick rate = %d", cfg.Display.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero tick rate", func(c *Config) { c.Display.TickRate = 0 }, false},
		{"negative canvas", func(c *Config) { c.Display.CanvasWidth = -640 }, false},
		{"zero canvas height", func(c *Config) { c.Display.CanvasHeight = 0 }, false},
		{"zero hold", func(c *Config) { c.Input.InitialHoldMs = 0 }, false},
		{"gap longer than repeat", func(c *Config) { c.Input.RepeatGapMs = 200 }, false},
		{"no lockout", func(c *Config) { c.Screens.GameOverLockoutMs = 0 }, true},
		{"negative lockout", func(c *Config) { c.Screens.GameOverLockoutMs = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tt.valid)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("validation errors should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.InitialHold().Milliseconds() != 500 {
		t.Errorf("InitialHold() = %v", cfg.Input.InitialHold())
	}
	if cfg.Input.RepeatHold().Milliseconds() != 120 {
		t.Errorf("RepeatHold() = %v", cfg.Input.RepeatHold())
	}
	if cfg.Input.RepeatGap().Milliseconds() != 60 {
		t.Errorf("RepeatGap() = %v", cfg.Input.RepeatGap())
	}
	if cfg.Screens.GameOverLockout().Seconds() != 3 {
		t.Errorf("GameOverLockout() = %v", cfg.Screens.GameOverLockout())
	}
}
