package systems

import (
	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateScreen returns the singleton Screen component, creating if needed.
// A new screen state starts on the title.
func GetOrCreateScreen(ecs *ecs.ECS) *components.ScreenData {
	entry, ok := components.Screen.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Screen))
		components.Screen.SetValue(entry, components.ScreenData{
			Current: cfg.ScreenTitle,
			Next:    cfg.ScreenTitle,
		})
	}
	return components.Screen.Get(entry)
}

// RequestScreen starts a fade to next. It returns false and changes nothing
// when a fade is already running.
func RequestScreen(screen *components.ScreenData, next cfg.ScreenID) bool {
	if screen.Transitioning() {
		log.Debug("screen request ignored during transition", "requested", next)
		return false
	}

	screen.Next = next
	screen.Phase = components.TransitionFadeOut
	screen.Tween = gween.New(0, 1, float32(cfg.Transition.FadeOut.Seconds()), ease.Linear)
	screen.Alpha = 0
	return true
}

// UpdateTransition advances a running fade by dt seconds. The screen swaps
// when the fade-out completes, then the overlay fades back in.
func UpdateTransition(screen *components.ScreenData, dt float32) {
	switch screen.Phase {
	case components.TransitionFadeOut:
		alpha, finished := screen.Tween.Update(dt)
		screen.Alpha = alpha
		if finished {
			log.Info("screen changed", "from", screen.Current, "to", screen.Next)
			screen.Current = screen.Next
			screen.Phase = components.TransitionFadeIn
			screen.Tween = gween.New(1, 0, float32(cfg.Transition.FadeIn.Seconds()), ease.Linear)
			screen.Alpha = 1
		}
	case components.TransitionFadeIn:
		alpha, finished := screen.Tween.Update(dt)
		screen.Alpha = alpha
		if finished {
			screen.Phase = components.TransitionIdle
			screen.Tween = nil
			screen.Alpha = 0
		}
	}
}

// TransitionAlpha is the fade overlay's opacity in [0, 1].
func TransitionAlpha(screen *components.ScreenData) float32 {
	if !screen.Transitioning() {
		return 0
	}
	return screen.Alpha
}

// UpdateScreenTransition advances the fade by one tick.
func UpdateScreenTransition(ecs *ecs.ECS) {
	UpdateTransition(GetOrCreateScreen(ecs), 1/float32(ebiten.TPS()))
}

// UpdateTitleControls starts a new run from the title screen.
func UpdateTitleControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionConfirm).JustPressed {
		ResetGame(ecs)
		RequestScreen(GetOrCreateScreen(ecs), cfg.ScreenGameplay)
	}
}

// UpdateGameplayControls handles confirm (restart after game over, otherwise
// pause toggle), restart and quit to title.
func UpdateGameplayControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	session := GetOrCreateSession(ecs)

	if GetAction(input, cfg.ActionConfirm).JustPressed {
		if session.GameOver {
			ResetGame(ecs)
		} else {
			session.Paused = !session.Paused
		}
	}

	if GetAction(input, cfg.ActionRestart).JustPressed {
		ResetGame(ecs)
	}

	if GetAction(input, cfg.ActionQuit).JustPressed {
		RequestScreen(GetOrCreateScreen(ecs), cfg.ScreenTitle)
	}
}
