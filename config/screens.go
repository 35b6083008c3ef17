package config

import "github.com/yohamta/donburi/ecs"

// Render layers
const (
	Default ecs.LayerID = iota
)

// ScreenID identifies the active top-level screen.
type ScreenID int

const (
	ScreenTitle ScreenID = iota
	ScreenGameplay
)

// ScreenToName maps ScreenID to a readable name for logging.
var ScreenToName = map[ScreenID]string{
	ScreenTitle:    "title",
	ScreenGameplay: "gameplay",
}

func (s ScreenID) String() string {
	if name, ok := ScreenToName[s]; ok {
		return name
	}
	return "unknown"
}
