package systems

import (
	"github.com/automoto/lulzmaku/components"
	"github.com/automoto/lulzmaku/stage"
	"github.com/automoto/lulzmaku/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Session))
	}
	return components.Session.Get(entry)
}

// SetStage installs the stage script the next runs play.
func SetStage(ecs *ecs.ECS, s *stage.Stage) {
	GetOrCreateSession(ecs).Stage = s
}

// ResetGame starts a fresh run: frame counter and flags cleared, player
// restored, every enemy and projectile removed. The stage script is kept.
func ResetGame(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	session.Frame = 0
	session.Paused = false
	session.GameOver = false
	session.GameWon = false

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		ResetPlayer(playerEntry)
		syncObject(playerEntry)
	}

	removeAll(ecs, tags.Enemy, removeEnemy)
	removeAll(ecs, tags.Projectile, removeProjectile)

	log.Debug("game reset")
}

// tagged is satisfied by donburi component types and tags.
type tagged interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

// collect snapshots matching entries so callers can remove them safely.
func collect(w donburi.World, t tagged) []*donburi.Entry {
	var entries []*donburi.Entry
	t.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}

func removeAll(ecs *ecs.ECS, t tagged, remove func(*ecs.ECS, *donburi.Entry)) {
	for _, e := range collect(ecs.World, t) {
		remove(ecs, e)
	}
}

// UpdateFrame advances the gameplay frame counter.
func UpdateFrame(ecs *ecs.ECS) {
	GetOrCreateSession(ecs).Frame++
}

// WithGameplayChecks chains systems behind one pause and game-over check.
// The check runs once per tick, so a flag latched by an earlier system in
// the chain does not cut the rest of the tick short.
func WithGameplayChecks(systems ...ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if session := GetOrCreateSession(e); session.Paused || session.GameOver {
			return
		}
		for _, system := range systems {
			system(e)
		}
	}
}
