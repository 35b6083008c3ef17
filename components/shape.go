package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// ShapeData is the exact hit shape. Rects are anchored at their top-left
// corner, circles at their center.
type ShapeData struct {
	Kind   ShapeKind
	X, Y   float64
	W, H   float64 // ShapeRect
	Radius float64 // ShapeCircle
	Color  color.RGBA
}

// Bounds returns the axis-aligned box around the shape.
func (s *ShapeData) Bounds() (x, y, w, h float64) {
	if s.Kind == ShapeCircle {
		return s.X - s.Radius, s.Y - s.Radius, s.Radius * 2, s.Radius * 2
	}
	return s.X, s.Y, s.W, s.H
}

// BroadPad widens broad-phase boxes on every side. The grid registers a box
// in the cells covering X..X+W-1, so fractional edges need the slack.
const BroadPad = 1.0

// BroadBounds returns Bounds grown by BroadPad on each side.
func (s *ShapeData) BroadBounds() (x, y, w, h float64) {
	x, y, w, h = s.Bounds()
	return x - BroadPad, y - BroadPad, w + 2*BroadPad, h + 2*BroadPad
}

var Shape = donburi.NewComponentType[ShapeData]()
