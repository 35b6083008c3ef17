package scenes

import (
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene shows the logo and waits for confirm.
type TitleScene struct {
	ecs *ecs.ECS
}

func NewTitleScene() *TitleScene {
	return &TitleScene{}
}

func (ts *TitleScene) Configure(world donburi.World) {
	ts.ecs = ecs.NewECS(world)

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateTitleControls)

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawTransition)
}

func (ts *TitleScene) Update() {
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	ts.ecs.Draw(screen)
}
