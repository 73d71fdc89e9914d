package pang

import (
	"math"

	"github.com/vovakirdan/tui-pang/internal/core"
)

// Shot is a grappling hook travelling up from the floor, trailing a rope.
type Shot struct {
	X, Y      float64 // X is fixed; Y is the tip of the hook
	destroyed bool
}

func newShot(x, floorY float64) *Shot {
	return &Shot{X: x, Y: floorY}
}

// Destroyed reports whether the shot has left the arena or hit a ball.
func (s *Shot) Destroyed() bool {
	return s.destroyed
}

// AdvanceAndRender implements Entity.
func (s *Shot) AdvanceAndRender(a *Arena, c core.Canvas) {
	if s.destroyed {
		return
	}

	if s.Y < 0 {
		s.destroy(a)
		return
	}
	s.Y -= ShotSpeed

	// First ball in collection order wins; one pinch per shot.
	for _, b := range a.Balls() {
		if s.Hits(b) {
			b.Pinch(a)
			s.destroy(a)
			return
		}
	}

	s.render(a, c)
}

func (s *Shot) destroy(a *Arena) {
	s.destroyed = true
	a.destroyShot(s)
}

// Hits reports whether the ball touches the rope or either lower corner of the hook.
func (s *Shot) Hits(b *Ball) bool {
	// The rope runs from the hook down to the floor; a ball lying wholly
	// below the tip and overlapping the rope's width is caught.
	if math.Abs(b.X-s.X) < b.R+ropeWidth/2 && b.Top() >= s.Y {
		return true
	}

	cornerY := s.Y + hookHeight
	return core.PointInCircle(s.X-ropeWidth/2, cornerY, b.X, b.Y, b.R) ||
		core.PointInCircle(s.X+ropeWidth/2, cornerY, b.X, b.Y, b.R)
}

func (s *Shot) render(a *Arena, c core.Canvas) {
	baseY := s.Y + hookHeight
	c.FillTriangle(s.X, s.Y, s.X-hookBase/2, baseY, s.X+hookBase/2, baseY, hookColor)
	c.FillRect(s.X-ropeWidth/2, baseY, ropeWidth, a.FloorY()-baseY, ropeColor)
}
