package systems

import (
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/gamemath"
	"github.com/automoto/lulzmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile, resolves hits and removes the
// ones that left the playfield or struck something.
func UpdateProjectiles(ecs *ecs.ECS) {
	width, height := cfg.C.PlayfieldWidth(), cfg.C.PlayfieldHeight()

	for _, e := range collect(ecs.World, tags.Projectile) {
		projectile := components.Projectile.Get(e)
		shape := components.Shape.Get(e)

		shape.X += projectile.DX
		shape.Y += projectile.DY
		if gamemath.OutOfBounds(shape.X, shape.Y, width, height) {
			projectile.Dead = true
		}
		syncObject(e)

		switch projectile.Owner {
		case components.OwnerPlayer:
			hitEnemy(e, projectile, shape)
		case components.OwnerEnemy:
			hitPlayer(e, projectile, shape)
		}

		if projectile.Dead {
			removeProjectile(ecs, e)
		}
	}
}

// hitEnemy damages the first enemy the shot overlaps.
func hitEnemy(e *donburi.Entry, projectile *components.ProjectileData, shape *components.ShapeData) {
	obj := components.Object.Get(e)
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		enemyEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !enemyEntry.Valid() {
			continue
		}
		es := components.Shape.Get(enemyEntry)
		if gamemath.CircleCircle(es.X, es.Y, es.Radius, shape.X, shape.Y, shape.Radius) {
			DamageEnemy(enemyEntry)
			projectile.Dead = true
			return
		}
	}
}

// hitPlayer damages the ship when the bullet overlaps it. The bullet is spent
// even if the ship is invulnerable.
func hitPlayer(e *donburi.Entry, projectile *components.ProjectileData, shape *components.ShapeData) {
	obj := components.Object.Get(e)
	check := obj.Check(0, 0, tags.ResolvPlayer)
	if check == nil {
		return
	}

	for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
		playerEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !playerEntry.Valid() {
			continue
		}
		ps := components.Shape.Get(playerEntry)
		if gamemath.RectCircle(ps.X, ps.Y, ps.W, ps.H, shape.X, shape.Y, shape.Radius) {
			DamagePlayer(playerEntry)
			projectile.Dead = true
			return
		}
	}
}

func removeProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	removeObject(ecs, e)
}
