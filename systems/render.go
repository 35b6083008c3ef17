package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/lulzmaku/assets"
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/fonts"
	"github.com/automoto/lulzmaku/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// drawImage draws a named sprite with its top-left corner at (x, y).
// Missing sprites are skipped.
func drawImage(screen *ebiten.Image, name string, x, y float64) {
	img := assets.GetImage(name)
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

func drawSprite(screen *ebiten.Image, e *donburi.Entry) {
	sprite := components.Sprite.Get(e)
	shape := components.Shape.Get(e)
	drawImage(screen, sprite.Name, shape.X+sprite.OffsetX, shape.Y+sprite.OffsetY)
}

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	drawImage(screen, assets.ImageSpace, 0, 0)
}

// DrawPlayer draws the ship. While invulnerable it shows on even frames only.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Invuln && sessionFrame(ecs)%2 != 0 {
		return
	}
	drawSprite(screen, playerEntry)
}

// DrawEnemies draws each enemy with its remaining health above it.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Label.Get()
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, e)

		shape := components.Shape.Get(e)
		label := fmt.Sprintf("HP: %d", components.Health.Get(e).Current)
		text.Draw(screen, label, face,
			int(shape.X-shape.Radius), int(shape.Y-cfg.Enemy.LabelOffsetY), cfg.HUD.TextColor)
	})
}

func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, e)
	})
}

// DrawTransition covers the screen with the fade overlay.
func DrawTransition(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Screen.First(ecs.World)
	if !ok {
		return
	}
	alpha := TransitionAlpha(components.Screen.Get(entry))
	if alpha <= 0 {
		return
	}

	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()),
		scaleAlpha(cfg.Transition.OverlayColor, alpha), false)
}

// scaleAlpha fades a premultiplied color.
func scaleAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func sessionFrame(ecs *ecs.ECS) int {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Session.Get(entry).Frame
}
