package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
)

func TestPlayerStaysInPlayfield(t *testing.T) {
	maxX := cfg.C.PlayfieldWidth() - cfg.Player.Width
	maxY := cfg.C.PlayfieldHeight() - cfg.Player.Height

	moves := [][]cfg.ActionID{
		{cfg.ActionMoveUp},
		{cfg.ActionMoveDown},
		{cfg.ActionMoveLeft},
		{cfg.ActionMoveRight},
		{cfg.ActionMoveUp, cfg.ActionMoveLeft},
		{cfg.ActionMoveDown, cfg.ActionMoveRight},
	}

	for _, move := range moves {
		e, player := newTestGame(t)
		shape := components.Shape.Get(player)
		for frame := 0; frame < 200; frame++ {
			hold(e, move...)
			UpdatePlayer(e)
			if shape.X < 0 || shape.X > maxX || shape.Y < 0 || shape.Y > maxY {
				t.Fatalf("moving %v: position (%v, %v) left the playfield on frame %d", move, shape.X, shape.Y, frame)
			}
		}
	}
}

func TestDiagonalSpeedMatchesAxialSpeed(t *testing.T) {
	diagonals := [][]cfg.ActionID{
		{cfg.ActionMoveUp, cfg.ActionMoveLeft},
		{cfg.ActionMoveUp, cfg.ActionMoveRight},
		{cfg.ActionMoveDown, cfg.ActionMoveLeft},
		{cfg.ActionMoveDown, cfg.ActionMoveRight},
		{cfg.ActionMoveUp},
		{cfg.ActionMoveRight},
	}

	for _, slow := range []bool{false, true} {
		expected := cfg.Player.Speed
		if slow {
			expected = cfg.Player.SlowSpeed
		}
		for _, move := range diagonals {
			e, player := newTestGame(t)
			shape := components.Shape.Get(player)
			shape.X, shape.Y = 200, 300

			actions := append([]cfg.ActionID{}, move...)
			if slow {
				actions = append(actions, cfg.ActionSlow)
			}
			hold(e, actions...)
			UpdatePlayer(e)

			dist := math.Hypot(shape.X-200, shape.Y-300)
			if math.Abs(dist-expected) > 1e-9 {
				t.Errorf("move %v slow=%v: moved %v, expected %v", move, slow, dist, expected)
			}
		}
	}
}

func TestInvulnerabilityLastsExactlyIFrames(t *testing.T) {
	e, playerEntry := newTestGame(t)
	player := components.Player.Get(playerEntry)
	lives := components.Lives.Get(playerEntry)

	if !DamagePlayer(playerEntry) {
		t.Fatal("first hit should land")
	}
	if lives.Lives != cfg.Player.MaxLives-1 {
		t.Fatalf("lives = %d, expected %d", lives.Lives, cfg.Player.MaxLives-1)
	}

	for frame := 1; frame < cfg.Player.InvulnFrames; frame++ {
		UpdatePlayer(e)
		if !player.Invuln {
			t.Fatalf("invulnerability ended early on frame %d", frame)
		}
		if DamagePlayer(playerEntry) {
			t.Fatalf("damage landed during invulnerability on frame %d", frame)
		}
	}
	if lives.Lives != cfg.Player.MaxLives-1 {
		t.Fatalf("lives changed during invulnerability: %d", lives.Lives)
	}

	UpdatePlayer(e)
	if player.Invuln {
		t.Fatalf("still invulnerable after %d frames", cfg.Player.InvulnFrames)
	}
	if !DamagePlayer(playerEntry) {
		t.Fatal("damage should land once invulnerability ends")
	}
}

func TestFireCooldown(t *testing.T) {
	now := time.Unix(1000, 0)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })

	e, playerEntry := newTestGame(t)
	shape := components.Shape.Get(playerEntry)
	if shape.X != 190 || shape.Y != cfg.C.PlayfieldHeight()-25 {
		t.Fatalf("player spawned at (%v, %v)", shape.X, shape.Y)
	}

	hold(e, cfg.ActionFire)
	UpdatePlayer(e)

	shots := projectilesOf(e, components.OwnerPlayer)
	if len(shots) != 2 {
		t.Fatalf("expected one pair of shots, got %d", len(shots))
	}
	xs := map[float64]bool{}
	for _, s := range shots {
		sh := components.Shape.Get(s)
		p := components.Projectile.Get(s)
		xs[sh.X] = true
		if sh.Y != shape.Y || p.DX != 0 || p.DY != -cfg.Player.ShotSpeed || sh.Radius != cfg.Player.ShotRadius {
			t.Errorf("shot = %+v %+v", *sh, *p)
		}
	}
	first := shape.X + shape.W - cfg.Player.ShotOffsetX
	if !xs[first] || !xs[first+cfg.Player.ShotSpacing] {
		t.Errorf("shot x positions = %v, expected %v and %v", xs, first, first+cfg.Player.ShotSpacing)
	}

	// Fire stays held for many frames inside the cooldown
	for i := 0; i < 20; i++ {
		now = now.Add(4 * time.Millisecond)
		hold(e, cfg.ActionFire)
		UpdatePlayer(e)
	}
	if n := len(projectilesOf(e, components.OwnerPlayer)); n != 2 {
		t.Fatalf("cooldown broken: %d shots after 80ms", n)
	}

	now = now.Add(20 * time.Millisecond)
	hold(e, cfg.ActionFire)
	UpdatePlayer(e)
	if n := len(projectilesOf(e, components.OwnerPlayer)); n != 4 {
		t.Fatalf("expected a second pair after 100ms, got %d shots", n)
	}
}

func TestLastLifeLatchesGameOverOnNextUpdate(t *testing.T) {
	e, playerEntry := newTestGame(t)
	components.Lives.Get(playerEntry).Lives = 1

	DamagePlayer(playerEntry)
	if lives := components.Lives.Get(playerEntry).Lives; lives != 0 {
		t.Fatalf("lives = %d, expected 0", lives)
	}
	session := GetOrCreateSession(e)
	if session.GameOver {
		t.Fatal("game over should wait for the next player update")
	}

	UpdatePlayer(e)
	if !session.GameOver {
		t.Fatal("game over not latched")
	}
}

func TestResetPlayer(t *testing.T) {
	_, playerEntry := newTestGame(t)
	player := components.Player.Get(playerEntry)
	shape := components.Shape.Get(playerEntry)

	DamagePlayer(playerEntry)
	player.LastFire = time.Unix(5, 0)
	shape.X, shape.Y = 10, 10

	ResetPlayer(playerEntry)

	if player.Invuln || !player.LastFire.IsZero() {
		t.Errorf("player state not cleared: %+v", *player)
	}
	if lives := components.Lives.Get(playerEntry).Lives; lives != cfg.Player.MaxLives {
		t.Errorf("lives = %d, expected %d", lives, cfg.Player.MaxLives)
	}
	if shape.X != cfg.Player.SpawnX || shape.Y != cfg.C.PlayfieldHeight()-cfg.Player.SpawnBottomOffset {
		t.Errorf("position = (%v, %v), expected spawn point", shape.X, shape.Y)
	}
}
