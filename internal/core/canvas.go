package core

import "math"

// Canvas is the drawing surface the game renders onto.
// Coordinates are in canvas pixels with the origin at the top-left corner.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Clear erases the hidden drawing surface.
	Clear()

	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c Color)

	// DrawText writes text whose box starts at the top-left point (x, y).
	// size is the nominal font height in pixels.
	DrawText(text string, x, y float64, size int, c Color)
}

// FillRune is the glyph used for filled cells.
const FillRune = '█'

// PixelCanvas rasterises pixel drawing calls onto a Screen.
// Each cell covers a block of canvasW/screenW by canvasH/screenH pixels; the
// mapping is recomputed on every call so resizing the screen is transparent.
type PixelCanvas struct {
	screen *Screen
	width  int
	height int
}

// NewPixelCanvas creates a canvas of the given pixel size backed by screen.
func NewPixelCanvas(screen *Screen, width, height int) *PixelCanvas {
	return &PixelCanvas{
		screen: screen,
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in pixels.
func (p *PixelCanvas) Width() int {
	return p.width
}

// Height returns the canvas height in pixels.
func (p *PixelCanvas) Height() int {
	return p.height
}

// Screen returns the backing cell buffer.
func (p *PixelCanvas) Screen() *Screen {
	return p.screen
}

// Clear erases the backing screen.
func (p *PixelCanvas) Clear() {
	p.screen.Clear()
}

// cellSize returns the pixel dimensions of one cell.
func (p *PixelCanvas) cellSize() (float64, float64) {
	sw, sh := p.screen.Width(), p.screen.Height()
	if sw <= 0 || sh <= 0 {
		return 0, 0
	}
	return float64(p.width) / float64(sw), float64(p.height) / float64(sh)
}

// paint fills one cell. Black erases it.
func (p *PixelCanvas) paint(col, row int, c Color) {
	if c == ColorBlack {
		p.screen.SetCell(col, row, blankCell)
		return
	}
	p.screen.SetCell(col, row, Cell{Rune: FillRune, Color: c})
}

// cellRange returns the inclusive cell span touched by the pixel interval [lo, hi).
func cellRange(lo, hi, size float64, limit int) (int, int) {
	first := int(math.Floor(lo / size))
	last := int(math.Ceil(hi/size)) - 1
	return Clamp(first, 0, limit-1), Clamp(last, 0, limit-1)
}

// FillRect fills every cell the rectangle overlaps.
func (p *PixelCanvas) FillRect(x, y, w, h float64, c Color) {
	cw, ch := p.cellSize()
	if cw == 0 || w <= 0 || h <= 0 {
		return
	}
	if x+w <= 0 || y+h <= 0 || x >= float64(p.width) || y >= float64(p.height) {
		return
	}

	c0, c1 := cellRange(x, x+w, cw, p.screen.Width())
	r0, r1 := cellRange(y, y+h, ch, p.screen.Height())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p.paint(col, row, c)
		}
	}
}

// FillCircle fills the cells whose center lies inside the circle.
func (p *PixelCanvas) FillCircle(cx, cy, r float64, c Color) {
	if r <= 0 {
		return
	}
	inside := func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= r*r
	}
	p.fillShape(cx-r, cy-r, cx+r, cy+r, cx, cy, inside, c)
}

// FillTriangle fills the cells whose center lies inside the triangle.
func (p *PixelCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c Color) {
	minX := math.Min(x1, math.Min(x2, x3))
	maxX := math.Max(x1, math.Max(x2, x3))
	minY := math.Min(y1, math.Min(y2, y3))
	maxY := math.Max(y1, math.Max(y2, y3))
	inside := func(px, py float64) bool {
		return PointInTriangle(px, py, x1, y1, x2, y2, x3, y3)
	}
	p.fillShape(minX, minY, maxX, maxY, (x1+x2+x3)/3, (y1+y2+y3)/3, inside, c)
}

// fillShape samples every cell center within the bounding box.
// Shapes smaller than a cell still paint the cell under their anchor point.
func (p *PixelCanvas) fillShape(minX, minY, maxX, maxY, anchorX, anchorY float64, inside func(px, py float64) bool, c Color) {
	cw, ch := p.cellSize()
	if cw == 0 {
		return
	}
	if maxX < 0 || maxY < 0 || minX >= float64(p.width) || minY >= float64(p.height) {
		return
	}

	c0, c1 := cellRange(minX, maxX, cw, p.screen.Width())
	r0, r1 := cellRange(minY, maxY, ch, p.screen.Height())
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * cw
			py := (float64(row) + 0.5) * ch
			if inside(px, py) {
				p.paint(col, row, c)
				painted = true
			}
		}
	}

	if !painted && anchorX >= 0 && anchorY >= 0 && anchorX < float64(p.width) && anchorY < float64(p.height) {
		p.paint(int(anchorX/cw), int(anchorY/ch), c)
	}
}

// DrawText places text starting at the cell containing (x, y).
// Font size has no effect on a character grid.
func (p *PixelCanvas) DrawText(text string, x, y float64, _ int, c Color) {
	cw, ch := p.cellSize()
	if cw == 0 {
		return
	}
	col := int(math.Floor(x / cw))
	row := int(math.Floor(y / ch))
	p.screen.DrawText(col, row, text, c)
}
