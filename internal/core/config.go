package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation works in canvas pixels; the platform maps them onto screen cells.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	CanvasW  int   // Canvas width in pixels
	CanvasH  int   // Canvas height in pixels
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		CanvasW:  640,
		CanvasH:  480,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a match.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the match has ended
}

// StepResult is returned by Arena.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
