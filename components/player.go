package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	DX, DY float64 // Direction for this frame, unit length on diagonals
	Speed  float64

	Invuln         bool
	InvulnTimer    int // Frames spent invulnerable so far
	InvulnDuration int

	FireCooldown time.Duration
	LastFire     time.Time // Zero until the first shot
}

var Player = donburi.NewComponentType[PlayerData]()
