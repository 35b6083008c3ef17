package gamemath

import "math"

// RectCircle reports whether a circle overlaps an axis-aligned rectangle.
// The closest point of the rectangle to the circle center must lie strictly
// inside the radius, so a circle that only touches the edge does not collide.
func RectCircle(rx, ry, rw, rh, cx, cy, radius float64) bool {
	closestX := math.Max(rx, math.Min(cx, rx+rw))
	closestY := math.Max(ry, math.Min(cy, ry+rh))

	dx := cx - closestX
	dy := cy - closestY
	return math.Hypot(dx, dy) < radius
}

// CircleCircle reports whether two circles overlap (touching is not overlap).
func CircleCircle(x1, y1, r1, x2, y2, r2 float64) bool {
	return math.Hypot(x1-x2, y1-y2) < r1+r2
}

// OutOfBounds reports whether a point lies outside [0,width]x[0,height].
func OutOfBounds(x, y, width, height float64) bool {
	return x < 0 || x > width || y < 0 || y > height
}
