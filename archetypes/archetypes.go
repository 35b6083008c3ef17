package archetypes

import (
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Shape,
		components.Object,
		components.Lives,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Shape,
		components.Object,
		components.Health,
		components.Sprite,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Shape,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
