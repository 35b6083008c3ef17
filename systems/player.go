package systems

import (
	"time"

	"github.com/automoto/lulzmaku/components"
	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/gamemath"
	"github.com/automoto/lulzmaku/systems/factory"
	"github.com/automoto/lulzmaku/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// timeNow is the wall clock used by the fire cooldown.
var timeNow = time.Now

func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	session := GetOrCreateSession(ecs)
	if lives := components.Lives.Get(playerEntry); lives.Lives < 1 && !session.GameOver {
		session.GameOver = true
		log.Info("game over", "frame", session.Frame)
	}

	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	shape := components.Shape.Get(playerEntry)

	var dx, dy float64
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy--
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy++
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx++
	}

	player.Speed = cfg.Player.Speed
	if GetAction(input, cfg.ActionSlow).Pressed {
		player.Speed = cfg.Player.SlowSpeed
	}

	if GetAction(input, cfg.ActionFire).Pressed {
		FirePlayer(ecs, playerEntry)
	}

	player.DX, player.DY = gamemath.NormalizeDiagonal(dx, dy)
	shape.X += player.DX * player.Speed
	shape.Y += player.DY * player.Speed

	updateInvuln(player)

	shape.X, shape.Y = gamemath.ClampToArea(shape.X, shape.Y, shape.W, shape.H,
		cfg.C.PlayfieldWidth(), cfg.C.PlayfieldHeight())
	syncObject(playerEntry)
}

func updateInvuln(player *components.PlayerData) {
	if !player.Invuln {
		return
	}
	player.InvulnTimer++
	if player.InvulnTimer >= player.InvulnDuration {
		player.Invuln = false
		player.InvulnTimer = 0
	}
}

// FirePlayer emits a side-by-side pair of shots from the ship's top edge
// unless the cooldown since the last trigger has not yet elapsed.
func FirePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	now := timeNow()
	if !player.LastFire.IsZero() && now.Sub(player.LastFire) < player.FireCooldown {
		return false
	}

	shape := components.Shape.Get(playerEntry)
	for i := 0; i < cfg.Player.ShotsPerTrigger; i++ {
		x := shape.X + shape.W - cfg.Player.ShotOffsetX + float64(i)*cfg.Player.ShotSpacing
		factory.CreateProjectile(ecs, x, shape.Y, 0, -cfg.Player.ShotSpeed,
			cfg.Player.ShotRadius, components.OwnerPlayer)
	}
	player.LastFire = now
	return true
}

// DamagePlayer takes a life and starts the invulnerability window. It is a
// no-op while already invulnerable.
func DamagePlayer(playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.Invuln {
		return false
	}

	lives := components.Lives.Get(playerEntry)
	lives.Lives--
	player.Invuln = true
	player.InvulnTimer = 0
	log.Debug("player hit", "lives", lives.Lives)
	return true
}

// ResetPlayer restores lives and the spawn position.
func ResetPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	player.Invuln = false
	player.InvulnTimer = 0
	player.DX, player.DY = 0, 0
	player.Speed = cfg.Player.Speed
	player.LastFire = time.Time{}

	lives := components.Lives.Get(playerEntry)
	lives.Lives = lives.MaxLives

	shape := components.Shape.Get(playerEntry)
	shape.X = cfg.Player.SpawnX
	shape.Y = cfg.C.PlayfieldHeight() - cfg.Player.SpawnBottomOffset
}
