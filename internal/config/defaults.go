package config

import (
	_ "embed"
)

//go:embed defaults/pang.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Display: Display{
			TickRate:     30,
			CanvasWidth:  640,
			CanvasHeight: 480,
		},
		Input: Input{
			InitialHoldMs: 500, // Typical keyboard auto-repeat delay
			RepeatHoldMs:  120,
			RepeatGapMs:   60,
		},
		Screens: Screens{
			GameOverLockoutMs: 3000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
