package pang

import "github.com/vovakirdan/tui-pang/internal/core"

// Arena layout
const (
	Margin = 24 // Width of the side walls and height of the floor, in pixels
)

// Spawn timing, in milliseconds
const (
	SpawnIntervalStart = 15000 // Delay between balls at match start
	SpawnIntervalMin   = 5000  // The interval never drops below this
	SpawnIntervalStep  = 200   // Reduction applied after every spawn
)

// Ball physics - all values are per frame
const (
	BallGravity     = 1.0               // Added to vertical velocity each frame
	BallSpeedX      = 4.0               // Magnitude of horizontal velocity
	BallMaxBounce   = -25.0             // Bounce velocity of a full-size ball
	BallMaxRadius   = 50.0              // Radius of a freshly spawned ball
	BallMinRadius   = BallSpeedX * 2    // Smaller balls are removed instead of split
	BallShrink      = 0.6               // Radius factor applied on every pinch
	BallPinchNudgeY = BallMaxBounce / 4 // Vertical velocity given after a split
	ballEntrySpeed  = 1.0               // Descent speed while entering from above
)

// Shot geometry and speed
const (
	ShotSpeed  = 10.0 // Upward speed per frame
	MaxShots   = 2    // Simultaneous shots allowed on screen
	hookHeight = 24.0 // Height of the hook triangle
	hookBase   = 16.0 // Width of the hook triangle base
	ropeWidth  = 6.0  // Width of the rope below the hook
)

// Player movement and collision box
const (
	PlayerSpeed        = 6.0  // Horizontal pixels per frame
	PlayerWidth        = 24.0 // Collision box width
	PlayerHeight       = 72.0 // Collision box height
	playerVisualOffset = 12.0 // The sprite starts this far left of the box
)

// Flash animation
const (
	flashStartRadius = 3.0
	flashMaxRadius   = 10.0
	flashRing        = 3.0 // Thickness of the visible ring
)

// Colors used by the arena and its entities
const (
	wallColor       = core.ColorYellow
	scoreColor      = core.ColorWhite
	ballShadowColor = core.ColorDarkRed
	ballBodyColor   = core.ColorCrimson
	ballShineColor  = core.ColorPink
	hookColor       = core.ColorLightGray
	ropeColor       = core.ColorBrown
)
