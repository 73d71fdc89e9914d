package pang

import (
	"github.com/vovakirdan/tui-pang/internal/core"
)

// Player is the character walking along the floor.
// X, Y is the top-left corner of its collision box.
type Player struct {
	X, Y float64
	fire core.EdgeTrigger
}

func newPlayer(a *Arena) *Player {
	return &Player{
		X: a.RightMargin() / 2,
		Y: a.FloorY() - PlayerHeight,
	}
}

// Box returns the player's collision box.
func (p *Player) Box() core.Rect {
	return core.NewRect(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// AdvanceAndRender implements Entity.
func (p *Player) AdvanceAndRender(a *Arena, c core.Canvas) {
	in := a.Input()

	maxX := a.RightMargin() - PlayerWidth
	if in.Has(core.ActionRight) {
		p.X = core.ClampF(p.X+PlayerSpeed, a.LeftMargin(), maxX)
	}
	if in.Has(core.ActionLeft) {
		p.X = core.ClampF(p.X-PlayerSpeed, a.LeftMargin(), maxX)
	}

	if p.fire.Update(in.Has(core.ActionFire)) {
		a.fireShot(p.X + PlayerWidth/2)
	}

	for _, b := range a.Balls() {
		if p.touches(b) {
			a.NotifyPlayerHit()
			break
		}
	}

	p.render(c)
}

// touches reports whether the ball has reached the player's box.
func (p *Player) touches(b *Ball) bool {
	box := p.Box()
	return b.Bottom() >= box.Y && core.SpanOverlaps(b.X, b.R, box.X, box.Right())
}

func (p *Player) render(c core.Canvas) {
	x := p.X - playerVisualOffset
	y := p.Y

	// Head
	c.FillCircle(x+24, y+16, 16, core.ColorOrange)
	c.FillCircle(x+18, y+14, 3, core.ColorBlack)
	c.FillCircle(x+30, y+14, 3, core.ColorBlack)
	c.FillRect(x+16, y+22, 16, 3, core.ColorBlack)

	// Arms and shirt
	c.FillTriangle(x+24, y+32, x+0, y+44, x+4, y+53, core.ColorOrange)
	c.FillTriangle(x+24, y+32, x+48, y+44, x+44, y+53, core.ColorOrange)
	c.FillRect(x+16, y+32, 16, 24, core.ColorWhite)

	// Legs and shoes
	c.FillRect(x+14, y+56, 8, 16, core.ColorBlue)
	c.FillRect(x+26, y+56, 8, 16, core.ColorBlue)
	c.FillRect(x+10, y+68, 12, 4, core.ColorRed)
	c.FillRect(x+26, y+68, 12, 4, core.ColorRed)
}
