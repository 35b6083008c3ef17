package components

import "github.com/yohamta/donburi"

// SpriteData names an embedded image and where to draw it relative to the
// shape anchor.
type SpriteData struct {
	Name             string
	OffsetX, OffsetY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
