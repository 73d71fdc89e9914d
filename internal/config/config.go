// Package config provides YAML-based runtime configuration for the game:
// display pacing, terminal input timings and screen flow.
// Gameplay constants are fixed and live in the pang package.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all runtime configuration.
type Config struct {
	Display Display `yaml:"display"`
	Input   Input   `yaml:"input"`
	Screens Screens `yaml:"screens"`
}

// Display defines tick pacing and the size of the logical canvas.
type Display struct {
	TickRate     int `yaml:"tick_rate"`     // Frames per second
	CanvasWidth  int `yaml:"canvas_width"`  // Pixels
	CanvasHeight int `yaml:"canvas_height"` // Pixels
}

// Input defines how key presses are turned into held keys.
// Terminals never report releases, so a key counts as held while
// auto-repeat presses keep arriving.
type Input struct {
	InitialHoldMs int `yaml:"initial_hold_ms"` // Wait for the first auto-repeat
	RepeatHoldMs  int `yaml:"repeat_hold_ms"`  // Wait between auto-repeats
	RepeatGapMs   int `yaml:"repeat_gap_ms"`   // Presses further apart than this are fresh taps
}

// Screens defines timings of the screens around a match.
type Screens struct {
	GameOverLockoutMs int `yaml:"game_over_lockout_ms"` // Space is ignored this long after game over
}

// InitialHold returns the initial hold window as a duration.
func (i Input) InitialHold() time.Duration {
	return time.Duration(i.InitialHoldMs) * time.Millisecond
}

// RepeatHold returns the repeat hold window as a duration.
func (i Input) RepeatHold() time.Duration {
	return time.Duration(i.RepeatHoldMs) * time.Millisecond
}

// RepeatGap returns the fresh-tap threshold as a duration.
func (i Input) RepeatGap() time.Duration {
	return time.Duration(i.RepeatGapMs) * time.Millisecond
}

// GameOverLockout returns the game-over lockout as a duration.
func (s Screens) GameOverLockout() time.Duration {
	return time.Duration(s.GameOverLockoutMs) * time.Millisecond
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, name, v))
		}
	}

	positive("display.tick_rate", c.Display.TickRate)
	positive("display.canvas_width", c.Display.CanvasWidth)
	positive("display.canvas_height", c.Display.CanvasHeight)
	positive("input.initial_hold_ms", c.Input.InitialHoldMs)
	positive("input.repeat_hold_ms", c.Input.RepeatHoldMs)
	positive("input.repeat_gap_ms", c.Input.RepeatGapMs)

	if c.Screens.GameOverLockoutMs < 0 {
		errs = append(errs, fmt.Errorf("%w: screens.game_over_lockout_ms must not be negative, got %d",
			ErrInvalid, c.Screens.GameOverLockoutMs))
	}

	if c.Input.RepeatGapMs > c.Input.RepeatHoldMs && c.Input.RepeatHoldMs > 0 {
		errs = append(errs, fmt.Errorf("%w: input.repeat_gap_ms (%d) exceeds input.repeat_hold_ms (%d)",
			ErrInvalid, c.Input.RepeatGapMs, c.Input.RepeatHoldMs))
	}

	return errors.Join(errs...)
}
