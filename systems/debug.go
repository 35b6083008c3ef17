package systems

import (
	"image/color"

	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var broadPhaseColor = color.RGBA{0, 255, 255, 255}

// DrawHitboxes outlines every exact hit shape in its own color, plus the
// broad-phase boxes in cyan. Enabled with -hitboxes.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := broadPhaseColor
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	components.Shape.Each(ecs.World, func(e *donburi.Entry) {
		shape := components.Shape.Get(e)
		switch shape.Kind {
		case components.ShapeRect:
			vector.StrokeRect(screen, float32(shape.X), float32(shape.Y),
				float32(shape.W), float32(shape.H), 1, shape.Color, false)
		case components.ShapeCircle:
			vector.StrokeCircle(screen, float32(shape.X), float32(shape.Y),
				float32(shape.Radius), 2, shape.Color, true)
		}
	})
}
