package gamemath

import "testing"

func TestRectCircle(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   float64
		radius   float64
		expected bool
	}{
		{name: "center inside rect", cx: 5, cy: 5, radius: 1, expected: true},
		{name: "overlapping left edge", cx: -2, cy: 5, radius: 3, expected: true},
		{name: "touching left edge", cx: -3, cy: 5, radius: 3, expected: false},
		{name: "clear of right edge", cx: 20, cy: 5, radius: 5, expected: false},
		{name: "near corner inside radius", cx: 12, cy: 12, radius: 3, expected: true},
		{name: "near corner outside radius", cx: 13, cy: 13, radius: 4, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RectCircle(0, 0, 10, 10, tc.cx, tc.cy, tc.radius)
			if got != tc.expected {
				t.Errorf("RectCircle() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleCircle(t *testing.T) {
	tests := []struct {
		name     string
		x2, y2   float64
		r2       float64
		expected bool
	}{
		{name: "same center", x2: 0, y2: 0, r2: 1, expected: true},
		{name: "overlapping", x2: 12, y2: 0, r2: 5, expected: true},
		{name: "touching", x2: 15, y2: 0, r2: 5, expected: false},
		{name: "apart diagonally", x2: 12, y2: 12, r2: 5, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CircleCircle(0, 0, 10, tc.x2, tc.y2, tc.r2)
			if got != tc.expected {
				t.Errorf("CircleCircle() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		x, y     float64
		expected bool
	}{
		{0, 0, false},
		{500, 700, false},
		{-0.1, 10, true},
		{10, -0.1, true},
		{500.1, 10, true},
		{10, 700.1, true},
	}

	for _, tc := range tests {
		if got := OutOfBounds(tc.x, tc.y, 500, 700); got != tc.expected {
			t.Errorf("OutOfBounds(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}
