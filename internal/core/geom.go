// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in pixel space used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// PointInCircle reports whether (px, py) lies strictly inside the circle.
func PointInCircle(px, py, cx, cy, r float64) bool {
	return Distance(px, py, cx, cy) < r
}

// SpanOverlaps reports whether the horizontal extent [cx-r, cx+r] of a circle
// touches the closed interval [left, right].
func SpanOverlaps(cx, r, left, right float64) bool {
	return cx+r >= left && cx-r <= right
}

// PointInTriangle reports whether (px, py) lies inside or on the triangle.
func PointInTriangle(px, py, x1, y1, x2, y2, x3, y3 float64) bool {
	d1 := cross(px, py, x1, y1, x2, y2)
	d2 := cross(px, py, x2, y2, x3, y3)
	d3 := cross(px, py, x3, y3, x1, y1)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
