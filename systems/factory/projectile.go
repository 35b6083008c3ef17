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

// CreateProjectile spawns a bullet centered at (x, y) moving by (dx, dy) each frame.
func CreateProjectile(ecs *ecs.ECS, x, y, dx, dy, radius float64, owner components.Owner) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	shape := components.ShapeData{
		Kind:   components.ShapeCircle,
		X:      x,
		Y:      y,
		Radius: radius,
	}
	sprite := components.SpriteData{}
	resolvTag := tags.ResolvPlayerShot
	switch owner {
	case components.OwnerPlayer:
		shape.Color = cfg.Projectile.PlayerColor
		sprite = components.SpriteData{
			Name:    assets.ImagePlayerShot,
			OffsetX: cfg.Projectile.PlayerSpriteOffsetX,
			OffsetY: cfg.Projectile.PlayerSpriteOffsetY,
		}
	case components.OwnerEnemy:
		shape.Color = cfg.Projectile.EnemyColor
		sprite = components.SpriteData{
			Name:    assets.ImageBullet,
			OffsetX: cfg.Projectile.EnemySpriteOffsetX,
			OffsetY: cfg.Projectile.EnemySpriteOffsetY,
		}
		resolvTag = tags.ResolvEnemyShot
	}

	components.Shape.SetValue(projectile, shape)
	newObject(ecs, projectile, shape, resolvTag)
	components.Projectile.SetValue(projectile, components.ProjectileData{
		DX:    dx,
		DY:    dy,
		Owner: owner,
	})
	components.Sprite.SetValue(projectile, sprite)

	return projectile
}
