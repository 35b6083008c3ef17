package systems

import (
	"fmt"

	"github.com/automoto/lulzmaku/assets"
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/fonts"
	"github.com/automoto/lulzmaku/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the side strip with the lives counter, then the
// game over, pause and win overlays.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	gameWidth := cfg.C.PlayfieldWidth()
	gameHeight := cfg.C.PlayfieldHeight()
	face := fonts.Normal.Get()

	drawImage(screen, assets.ImageHUD, gameWidth, 0)

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		lives := components.Lives.Get(playerEntry)
		text.Draw(screen, fmt.Sprintf("%d", lives.Lives), face,
			int(gameWidth+cfg.HUD.LivesX), int(cfg.HUD.LivesY), cfg.HUD.TextColor)
	}
	drawImage(screen, assets.ImageShip, gameWidth+cfg.HUD.ShipIconX, cfg.HUD.ShipIconY)

	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	if session.GameOver {
		text.Draw(screen, "GAME OVER", face, int(gameWidth/2-35), int(gameHeight/2), cfg.HUD.TextColor)
		promptX := int(gameWidth + cfg.HUD.PromptX)
		text.Draw(screen, "PRESS", face, promptX, int(cfg.HUD.PromptY), cfg.HUD.TextColor)
		text.Draw(screen, "ENTER", face, promptX, int(cfg.HUD.PromptY+cfg.HUD.PromptLineGap), cfg.HUD.TextColor)
	}
	if session.Paused {
		text.Draw(screen, "PAUSED", face, int(gameWidth/2-20), int(gameHeight/2), cfg.HUD.TextColor)
	}
	if session.GameWon {
		text.Draw(screen, "YOU WON", fonts.Banner.Get(), int(gameWidth/2-120), int(gameHeight/2), cfg.HUD.WonColor)
	}
}
