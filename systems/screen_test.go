package systems

import (
	"testing"

	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/tags"
)

func TestTransitionSwapsAfterFadeOut(t *testing.T) {
	screen := &components.ScreenData{Current: cfg.ScreenTitle}

	if !RequestScreen(screen, cfg.ScreenGameplay) {
		t.Fatal("request from idle should start a transition")
	}

	UpdateTransition(screen, 0.25)
	if screen.Current != cfg.ScreenTitle {
		t.Fatal("screen swapped before the fade-out finished")
	}
	if a := TransitionAlpha(screen); a <= 0 || a >= 1 {
		t.Fatalf("mid fade-out alpha = %v", a)
	}

	UpdateTransition(screen, 0.25)
	if screen.Current != cfg.ScreenGameplay {
		t.Fatal("screen did not swap once the fade-out finished")
	}
	if screen.Phase != components.TransitionFadeIn {
		t.Fatalf("phase = %v, expected fade-in", screen.Phase)
	}

	UpdateTransition(screen, 0.25)
	if !screen.Transitioning() {
		t.Fatal("fade-in ended early")
	}
	UpdateTransition(screen, 0.25)
	if screen.Transitioning() || TransitionAlpha(screen) != 0 {
		t.Fatalf("transition still running: phase %v alpha %v", screen.Phase, screen.Alpha)
	}
}

func TestRequestScreenRejectedDuringTransition(t *testing.T) {
	screen := &components.ScreenData{Current: cfg.ScreenGameplay}
	RequestScreen(screen, cfg.ScreenTitle)

	for _, dt := range []float32{0, 0.25, 0.25} {
		UpdateTransition(screen, dt)
		if RequestScreen(screen, cfg.ScreenGameplay) {
			t.Fatal("request accepted during a transition")
		}
		if screen.Next != cfg.ScreenTitle {
			t.Fatalf("rejected request changed the pending screen to %v", screen.Next)
		}
	}

	UpdateTransition(screen, 0.5)
	if screen.Current != cfg.ScreenTitle {
		t.Fatalf("landed on %v, expected title", screen.Current)
	}
	if !RequestScreen(screen, cfg.ScreenGameplay) {
		t.Fatal("request should be accepted once idle")
	}
}

func TestTitleConfirmStartsGame(t *testing.T) {
	e, _ := newTestGame(t)
	session := GetOrCreateSession(e)
	session.GameOver = true
	spawnEnemy(e, 100, 100, 10, "burst")

	hold(e, cfg.ActionConfirm)
	UpdateTitleControls(e)

	screen := GetOrCreateScreen(e)
	if screen.Next != cfg.ScreenGameplay || !screen.Transitioning() {
		t.Fatalf("screen = %+v, expected a transition to gameplay", *screen)
	}
	if session.GameOver || countTagged(e, tags.Enemy) != 0 {
		t.Fatal("confirm on title should reset the game")
	}

	// Held confirm is edge-triggered
	hold(e, cfg.ActionConfirm)
	UpdateTitleControls(e)
	if screen.Next != cfg.ScreenGameplay {
		t.Fatal("held confirm triggered again")
	}
}

func TestGameplayControls(t *testing.T) {
	e, _ := newTestGame(t)
	session := GetOrCreateSession(e)

	hold(e, cfg.ActionConfirm)
	UpdateGameplayControls(e)
	if !session.Paused {
		t.Fatal("confirm should pause")
	}
	hold(e)
	UpdateGameplayControls(e)
	hold(e, cfg.ActionConfirm)
	UpdateGameplayControls(e)
	if session.Paused {
		t.Fatal("second confirm should unpause")
	}

	session.GameOver = true
	session.Frame = 77
	hold(e)
	UpdateGameplayControls(e)
	hold(e, cfg.ActionConfirm)
	UpdateGameplayControls(e)
	if session.GameOver || session.Paused || session.Frame != 0 {
		t.Fatalf("confirm after game over should restart: %+v", *session)
	}

	session.Frame = 50
	hold(e, cfg.ActionRestart)
	UpdateGameplayControls(e)
	if session.Frame != 0 {
		t.Fatal("restart did not reset the frame counter")
	}

	hold(e, cfg.ActionQuit)
	UpdateGameplayControls(e)
	screen := GetOrCreateScreen(e)
	if screen.Next != cfg.ScreenTitle || !screen.Transitioning() {
		t.Fatalf("quit should fade to title: %+v", *screen)
	}
}
