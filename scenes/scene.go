package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Scene is one top-level screen. Every scene runs its own systems over the
// session world it is configured with.
type Scene interface {
	Configure(world donburi.World)
	Update()
	Draw(screen *ebiten.Image)
}
