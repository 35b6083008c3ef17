package scenes

import (
	"sync"

	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Director owns the session world and hands each tick to the active screen.
// The fade runs in its own ECS ahead of the scenes so a swap takes effect on
// the same tick it completes.
type Director struct {
	ecs    *ecs.ECS
	scenes map[cfg.ScreenID]Scene
	once   sync.Once
}

func NewDirector() *Director {
	return &Director{
		scenes: map[cfg.ScreenID]Scene{
			cfg.ScreenTitle:    NewTitleScene(),
			cfg.ScreenGameplay: NewGameplayScene(),
		},
	}
}

func (d *Director) configure() {
	world := donburi.NewWorld()
	d.ecs = ecs.NewECS(world)
	d.ecs.AddSystem(systems.UpdateScreenTransition)

	for _, scene := range d.scenes {
		scene.Configure(world)
	}

	if cfg.Debug.SkipTitle {
		systems.ResetGame(d.ecs)
		systems.GetOrCreateScreen(d.ecs).Current = cfg.ScreenGameplay
	}
}

func (d *Director) active() Scene {
	return d.scenes[systems.GetOrCreateScreen(d.ecs).Current]
}

func (d *Director) Update() {
	d.once.Do(d.configure)
	d.ecs.Update()
	d.active().Update()
}

func (d *Director) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if d.ecs == nil {
		return
	}
	d.active().Draw(screen)
}
