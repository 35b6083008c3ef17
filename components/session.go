package components

import (
	"github.com/automoto/lulzmaku/stage"
	"github.com/yohamta/donburi"
)

// SessionData is the per-run gameplay state.
type SessionData struct {
	Frame    int
	Paused   bool
	GameOver bool
	GameWon  bool
	Stage    *stage.Stage
}

var Session = donburi.NewComponentType[SessionData]()
