package scenes

import (
	"github.com/automoto/lulzmaku/assets"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/stage"
	"github.com/automoto/lulzmaku/systems"
	"github.com/automoto/lulzmaku/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameplayScene runs the stage: player, enemies, projectiles and the HUD.
type GameplayScene struct {
	ecs *ecs.ECS
}

func NewGameplayScene() *GameplayScene {
	return &GameplayScene{}
}

func (gs *GameplayScene) Configure(world donburi.World) {
	e := ecs.NewECS(world)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateGameplayControls)

	// Skipped while paused or after game over
	e.AddSystem(systems.WithGameplayChecks(
		systems.UpdateFrame,
		systems.UpdateStage,
		systems.UpdatePlayer,
		systems.UpdateEnemies,
		systems.UpdateProjectiles,
	))

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawEnemies)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawHitboxes)
	e.AddRenderer(cfg.Default, systems.DrawTransition)

	gs.ecs = e

	factory.GetOrCreateSpace(e)
	factory.CreatePlayer(e)
	systems.SetStage(e, loadStage(cfg.Debug.StageFile))
}

// loadStage reads an embedded stage, falling back to the built-in one.
func loadStage(name string) *stage.Stage {
	s, err := assets.LoadStage(name)
	if err != nil {
		log.Warn("stage load failed, using built-in stage", "file", name, "err", err)
		return stage.StageOne()
	}
	log.Info("stage loaded", "file", name, "winAfter", s.WinAfter, "waves", len(s.Frames()))
	return s
}

func (gs *GameplayScene) Update() {
	gs.ecs.Update()
}

func (gs *GameplayScene) Draw(screen *ebiten.Image) {
	gs.ecs.Draw(screen)
}
