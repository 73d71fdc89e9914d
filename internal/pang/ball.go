package pang

import (
	"math"

	"github.com/vovakirdan/tui-pang/internal/core"
)

// BallPhase describes where a ball is in its lifecycle.
type BallPhase int

const (
	BallEntering BallPhase = iota // Center still above the ceiling, sliding in slowly
	BallBouncing                  // Normal physics
	BallRemoved                   // Popped for good
)

// String returns a human-readable name for the phase.
func (p BallPhase) String() string {
	switch p {
	case BallEntering:
		return "entering"
	case BallBouncing:
		return "bouncing"
	case BallRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Ball is a bouncing ball. It only ever shrinks, by splitting on hits,
// until it is too small and gets removed.
type Ball struct {
	X, Y    float64 // Center
	R       float64 // Radius
	VX, VY  float64 // Velocity per frame
	removed bool
}

// NewBall creates a full-size ball just above the ceiling at x.
// Balls spawned in the left half of the arena head right, and vice versa.
func NewBall(a *Arena, x float64) *Ball {
	vx := BallSpeedX
	if x >= a.centerX() {
		vx = -BallSpeedX
	}
	return &Ball{
		X:  x,
		Y:  -BallMaxRadius,
		R:  BallMaxRadius,
		VX: vx,
	}
}

// Phase returns the ball's lifecycle phase.
func (b *Ball) Phase() BallPhase {
	switch {
	case b.removed:
		return BallRemoved
	case b.Y < 0:
		return BallEntering
	default:
		return BallBouncing
	}
}

// Top returns the y-coordinate of the ball's highest point.
func (b *Ball) Top() float64 {
	return b.Y - b.R
}

// Bottom returns the y-coordinate of the ball's lowest point.
func (b *Ball) Bottom() float64 {
	return b.Y + b.R
}

// AdvanceAndRender implements Entity.
func (b *Ball) AdvanceAndRender(a *Arena, c core.Canvas) {
	if b.removed {
		return
	}
	b.advance(a)
	b.render(c)
}

// advance integrates one frame of motion and resolves floor and wall contacts.
func (b *Ball) advance(a *Arena) {
	left, right, floor := a.LeftMargin(), a.RightMargin(), a.FloorY()

	// Entering balls drift down slowly so the player can see where they land.
	if b.Y < 0 {
		b.Y += ballEntrySpeed
	} else {
		b.X += b.VX
		b.Y += b.VY
		b.VY += BallGravity
	}

	// Bigger balls bounce higher.
	if b.Y+b.R >= floor {
		b.Y = floor - b.R
		b.VY = BallMaxBounce * (0.5 + 0.5*b.R/BallMaxRadius)
	}

	// Both walls hold the ball, whichever way it is heading.
	if b.X-b.R <= left {
		b.X = left + b.R
		b.VX = math.Abs(b.VX)
	} else if b.X+b.R >= right {
		b.X = right - b.R
		b.VX = -math.Abs(b.VX)
	}
}

// render draws three stacked discs for a shaded look. Collision only uses X, Y and R.
func (b *Ball) render(c core.Canvas) {
	c.FillCircle(b.X, b.Y, b.R, ballShadowColor)
	c.FillCircle(b.X-b.R/7, b.Y-b.R/7, b.R*0.8, ballBodyColor)
	c.FillCircle(b.X-b.R/2.5, b.Y-b.R/2, b.R*0.15, ballShineColor)
}

// Pinch handles a shot hitting the ball. The ball shrinks; if it is still big
// enough it splits into two balls heading apart, otherwise it is removed.
// Either way the player scores a point and a flash marks the impact.
func (b *Ball) Pinch(a *Arena) {
	if b.removed {
		return
	}

	b.R *= BallShrink
	if b.R < BallMinRadius {
		b.removed = true
		a.RemoveEntity(b)
		a.matchLog.Debug("ball popped", "x", b.X, "y", b.Y)
	} else {
		b.VY = BallPinchNudgeY
		clone := &Ball{
			X:  b.X - b.VX,
			Y:  b.Y,
			R:  b.R,
			VX: -b.VX,
			VY: b.VY,
		}
		a.AddEntity(clone)
		b.X += b.VX
		a.matchLog.Debug("ball split", "x", b.X, "y", b.Y, "radius", b.R)
	}

	a.IncrementScore()
	a.AddEntity(newFlash(b.X, b.Y))
}
