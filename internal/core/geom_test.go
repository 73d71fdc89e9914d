package core

import (
	"math"
	"testing"
)

func TestRectRight(t *testing.T) {
	r := NewRect(100, 400, 24, 72)

	if r.Right() != 124 {
		t.Errorf("Right() = %v, expected 124", r.Right())
	}
}

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"center", 200, 300, true},
		{"just inside", 200, 349.9, true},
		{"on the edge is outside", 200, 350, false},
		{"diagonal outside", 240, 340, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInCircle(tc.px, tc.py, 200, 300, 50); got != tc.expected {
				t.Errorf("PointInCircle(%v, %v) = %v, expected %v", tc.px, tc.py, got, tc.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
	if d := Distance(1, 1, 1, 1); d != 0 {
		t.Errorf("Distance() of same point = %v, expected 0", d)
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		cx, r    float64
		expected bool
	}{
		{"centered", 112, 10, true},
		{"touching left edge", 90, 10, true},
		{"touching right edge", 134, 10, true},
		{"clear of left edge", 89, 10, false},
		{"clear of right edge", 135, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SpanOverlaps(tc.cx, tc.r, 100, 124); got != tc.expected {
				t.Errorf("SpanOverlaps(%v, %v) = %v, expected %v", tc.cx, tc.r, got, tc.expected)
			}
		})
	}
}

func TestPointInTriangle(t *testing.T) {
	// Hook shape: tip at top, base below
	x1, y1 := 200.0, 100.0
	x2, y2 := 192.0, 124.0
	x3, y3 := 208.0, 124.0

	if !PointInTriangle(200, 120, x1, y1, x2, y2, x3, y3) {
		t.Error("point near the base should be inside")
	}
	if !PointInTriangle(x1, y1, x1, y1, x2, y2, x3, y3) {
		t.Error("vertex should count as inside")
	}
	if PointInTriangle(195, 102, x1, y1, x2, y2, x3, y3) {
		t.Error("point beside the tip should be outside")
	}
	if PointInTriangle(200, 130, x1, y1, x2, y2, x3, y3) {
		t.Error("point below the base should be outside")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{math.Inf(1), 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
