package factory

import (
	"github.com/automoto/lulzmaku/archetypes"
	"github.com/automoto/lulzmaku/assets"
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/stage"
	"github.com/automoto/lulzmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy from a stage entry.
func CreateEnemy(ecs *ecs.ECS, spawn stage.Spawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	shape := components.ShapeData{
		Kind:   components.ShapeCircle,
		X:      spawn.X,
		Y:      spawn.Y,
		Radius: spawn.Radius,
		Color:  cfg.Enemy.Color,
	}
	components.Shape.SetValue(enemy, shape)
	newObject(ecs, enemy, shape, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Behavior: spawn.Behavior,
		Tag:      spawn.Tag,
		Flipped:  spawn.Flipped,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: spawn.Health,
		Max:     spawn.Health,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Name:    assets.ImageEnemy,
		OffsetX: cfg.Enemy.SpriteOffsetX,
		OffsetY: cfg.Enemy.SpriteOffsetY,
	})

	return enemy
}
