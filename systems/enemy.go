package systems

import (
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/pattern"
	"github.com/automoto/lulzmaku/systems/factory"
	"github.com/automoto/lulzmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies removes defeated enemies and runs every other enemy's
// firing rule for the current frame.
func UpdateEnemies(ecs *ecs.ECS) {
	frame := GetOrCreateSession(ecs).Frame
	targetX, targetY := playerPosition(ecs)

	var volleys []pattern.Volley
	for _, e := range collect(ecs.World, tags.Enemy) {
		enemy := components.Enemy.Get(e)
		if components.Health.Get(e).Current < 1 {
			enemy.Dead = true
			removeEnemy(ecs, e)
			continue
		}

		shape := components.Shape.Get(e)
		v := pattern.Fire(pattern.State{
			Behavior: enemy.Behavior,
			X:        shape.X,
			Y:        shape.Y,
			Angle:    enemy.Angle,
			Flipped:  enemy.Flipped,
		}, frame, targetX, targetY)
		enemy.Angle = v.Angle
		if len(v.Spawns) > 0 {
			volleys = append(volleys, v)
		}
	}

	for _, v := range volleys {
		for _, s := range v.Spawns {
			factory.CreateProjectile(ecs, s.X, s.Y, s.DX, s.DY,
				cfg.Projectile.EnemyRadius, components.OwnerEnemy)
		}
	}
}

// playerPosition is the homing target: the ship's top-left corner.
func playerPosition(ecs *ecs.ECS) (float64, float64) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return 0, 0
	}
	shape := components.Shape.Get(playerEntry)
	return shape.X, shape.Y
}

// DamageEnemy takes one point of health.
func DamageEnemy(e *donburi.Entry) {
	components.Health.Get(e).Current--
}

// AllEnemiesDead reports whether no enemy is left in the world.
func AllEnemiesDead(ecs *ecs.ECS) bool {
	_, ok := tags.Enemy.First(ecs.World)
	return !ok
}

func removeEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	removeObject(ecs, e)
}
