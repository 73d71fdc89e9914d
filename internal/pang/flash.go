package pang

import "github.com/vovakirdan/tui-pang/internal/core"

// Flash is a short-lived burst drawn where a ball was hit.
type Flash struct {
	X, Y float64
	R    float64
}

func newFlash(x, y float64) *Flash {
	return &Flash{X: x, Y: y, R: flashStartRadius}
}

// AdvanceAndRender implements Entity.
func (f *Flash) AdvanceAndRender(a *Arena, c core.Canvas) {
	f.R++
	if f.R > flashMaxRadius {
		a.RemoveEntity(f)
		return
	}
	c.FillCircle(f.X, f.Y, f.R, core.PaletteColor(a.rng.Intn(216)))
	c.FillCircle(f.X, f.Y, f.R-flashRing, core.ColorBlack)
}
