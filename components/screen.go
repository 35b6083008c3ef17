package components

import (
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type TransitionPhase int

const (
	TransitionIdle TransitionPhase = iota
	TransitionFadeOut
	TransitionFadeIn
)

// ScreenData tracks the active screen and any fade in progress.
type ScreenData struct {
	Current cfg.ScreenID
	Next    cfg.ScreenID
	Phase   TransitionPhase
	Tween   *gween.Tween
	Alpha   float32 // Overlay opacity, 0 when idle
}

// Transitioning reports whether a fade is running.
func (s *ScreenData) Transitioning() bool {
	return s.Phase != TransitionIdle
}

var Screen = donburi.NewComponentType[ScreenData]()
