package systems

import (
	"github.com/automoto/lulzmaku/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// syncObject moves the entity's broad-phase box onto its current shape.
func syncObject(e *donburi.Entry) {
	shape := components.Shape.Get(e)
	obj := components.Object.Get(e)
	obj.X, obj.Y, obj.W, obj.H = shape.BroadBounds()
	obj.Update()
}

// removeObject drops the entity's box from the space and the entity from the world.
func removeObject(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(e)
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	ecs.World.Remove(e.Entity())
}
