package factory

import (
	"github.com/automoto/lulzmaku/archetypes"
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Broad-phase grid cell size in pixels.
const spaceCellSize = 20

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// GetOrCreateSpace returns the playfield's collision space, creating it
// sized to the playfield on first use.
func GetOrCreateSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = CreateSpace(ecs,
			int(cfg.C.PlayfieldWidth()), int(cfg.C.PlayfieldHeight()),
			spaceCellSize, spaceCellSize)
	}
	return components.Space.Get(entry)
}

// newObject builds a broad-phase object around shape and registers it.
func newObject(ecs *ecs.ECS, entry *donburi.Entry, shape components.ShapeData, tags ...string) *resolv.Object {
	x, y, w, h := shape.BroadBounds()
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	GetOrCreateSpace(ecs).Add(obj)
	return obj
}
