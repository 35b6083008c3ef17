package systems

import (
	"github.com/automoto/lulzmaku/assets"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

func DrawTitle(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	screen.Fill(cfg.Title.BackgroundColor)
	drawImage(screen, assets.ImageTitle, width/2-cfg.Title.LogoOffsetX, cfg.Title.LogoY)
	text.Draw(screen, cfg.Title.Prompt, fonts.Normal.Get(),
		int(width/2-cfg.Title.PromptOffsetX), int(height/2+cfg.Title.PromptOffsetY), cfg.Title.TextColor)
}
