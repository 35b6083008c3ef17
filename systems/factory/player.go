package factory

import (
	"github.com/automoto/lulzmaku/archetypes"
	"github.com/automoto/lulzmaku/assets"
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the ship at its start position with full lives.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	shape := components.ShapeData{
		Kind:  components.ShapeRect,
		X:     cfg.Player.SpawnX,
		Y:     cfg.C.PlayfieldHeight() - cfg.Player.SpawnBottomOffset,
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Color: cfg.Player.Color,
	}
	components.Shape.SetValue(player, shape)
	newObject(ecs, player, shape, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Speed:          cfg.Player.Speed,
		InvulnDuration: cfg.Player.InvulnFrames,
		FireCooldown:   cfg.Player.FireCooldown,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.MaxLives,
		MaxLives: cfg.Player.MaxLives,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Name:    assets.ImageShip,
		OffsetX: cfg.Player.SpriteOffsetX,
		OffsetY: cfg.Player.SpriteOffsetY,
	})

	return player
}
