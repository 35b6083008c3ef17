package systems

import (
	"testing"

	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/pattern"
	"github.com/automoto/lulzmaku/stage"
	"github.com/automoto/lulzmaku/systems/factory"
	"github.com/automoto/lulzmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestGame builds a gameplay world with a space, a player at the spawn
// point and an empty stage.
func newTestGame(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.GetOrCreateSpace(e)
	player := factory.CreatePlayer(e)
	SetStage(e, stage.New("test", 0))
	return e, player
}

// hold sets the actions held this tick; everything else is released.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func countTagged(e *ecs.ECS, t tagged) int {
	return len(collect(e.World, t))
}

func projectilesOf(e *ecs.ECS, owner components.Owner) []*donburi.Entry {
	var out []*donburi.Entry
	for _, entry := range collect(e.World, tags.Projectile) {
		if components.Projectile.Get(entry).Owner == owner {
			out = append(out, entry)
		}
	}
	return out
}

func spawnEnemy(e *ecs.ECS, x, y float64, health int, tag string) *donburi.Entry {
	b, _ := pattern.ParseBehavior(tag)
	return factory.CreateEnemy(e, stage.Spawn{X: x, Y: y, Radius: 10, Health: health, Behavior: b, Tag: tag})
}
