package systems

import (
	"github.com/automoto/lulzmaku/pattern"
	"github.com/automoto/lulzmaku/stage"
	"github.com/automoto/lulzmaku/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStage spawns this frame's enemies and latches the win once the
// stage's clear condition holds.
func UpdateStage(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Stage == nil {
		session.Stage = stage.StageOne()
	}

	SpawnEnemies(ecs, session.Stage.SpawnsAt(session.Frame))

	if !session.GameWon && session.Stage.Won(session.Frame, AllEnemiesDead(ecs)) {
		session.GameWon = true
		log.Info("stage cleared", "stage", session.Stage.Name, "frame", session.Frame)
	}
}

// SpawnEnemies creates one enemy per stage entry.
func SpawnEnemies(ecs *ecs.ECS, spawns []stage.Spawn) {
	for _, s := range spawns {
		if s.Behavior == pattern.BehaviorNone {
			log.Warn("unknown enemy behavior, enemy will not fire", "tag", s.Tag, "x", s.X, "y", s.Y)
		}
		factory.CreateEnemy(ecs, s)
		log.Debug("enemy spawned", "behavior", s.Behavior, "health", s.Health, "x", s.X, "y", s.Y)
	}
}
