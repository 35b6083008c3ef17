package gamemath

import "math"

// NormalizeDiagonal scales a direction so diagonal movement has the same
// magnitude as axis-aligned movement. Axis-aligned and zero input is returned
// unchanged.
func NormalizeDiagonal(dx, dy float64) (float64, float64) {
	if dx == 0 || dy == 0 {
		return dx, dy
	}
	length := math.Hypot(dx, dy)
	return dx / length, dy / length
}

// ClampToArea keeps a w*h box with top-left (x,y) inside [0,areaW]x[0,areaH].
func ClampToArea(x, y, w, h, areaW, areaH float64) (float64, float64) {
	if x+w >= areaW {
		x = areaW - w
	} else if x <= 0 {
		x = 0
	}

	if y+h >= areaH {
		y = areaH - h
	} else if y <= 0 {
		y = 0
	}
	return x, y
}

// Polar converts an angle (radians) and speed into a per-frame velocity.
func Polar(angle, speed float64) (dx, dy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// AngleTo returns the angle of the vector from (fromX,fromY) to (toX,toY).
func AngleTo(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}
