// Package pattern holds the enemy firing rules. Each rule is a pure function
// of the enemy's firing state and the gameplay frame counter.
package pattern

import (
	"math"

	cfg "github.com/automoto/lulzmaku/config"
	"github.com/automoto/lulzmaku/gamemath"
)

// Behavior is the firing pattern an enemy runs.
type Behavior int

const (
	BehaviorNone Behavior = iota // Never fires
	Burst
	Spiral
	Homing
)

// tagToBehavior maps stage file tags to behaviors. Early stage scripts spelled
// the spiral tag "sprial"; both spellings resolve to Spiral.
var tagToBehavior = map[string]Behavior{
	"burst":  Burst,
	"spiral": Spiral,
	"sprial": Spiral,
	"homing": Homing,
}

// ParseBehavior resolves a stage tag. Unknown tags return BehaviorNone and false.
func ParseBehavior(tag string) (Behavior, bool) {
	b, ok := tagToBehavior[tag]
	if !ok {
		return BehaviorNone, false
	}
	return b, true
}

func (b Behavior) String() string {
	switch b {
	case Burst:
		return "burst"
	case Spiral:
		return "spiral"
	case Homing:
		return "homing"
	}
	return "none"
}

// Period returns how many frames pass between two volleys, or 0 for
// behaviors that never fire.
func Period(b Behavior) int {
	switch b {
	case Burst:
		return cfg.Pattern.BurstPeriod
	case Spiral:
		return cfg.Pattern.SpiralPeriod
	case Homing:
		return cfg.Pattern.HomingPeriod
	}
	return 0
}

// State is the part of an enemy the firing rules read.
type State struct {
	Behavior Behavior
	X, Y     float64
	Angle    float64 // Spiral accumulator
	Flipped  bool    // Spiral turns the other way
}

// Spawn is a request for one enemy projectile.
type Spawn struct {
	X, Y   float64
	DX, DY float64
}

// Volley is the result of running a rule for one frame.
type Volley struct {
	Spawns []Spawn
	Angle  float64 // Accumulator to store back on the enemy
}

// Fire runs the enemy's rule for the given frame. The target is the player's
// position at trigger time; homing shots are aimed once and never re-aimed.
func Fire(s State, frame int, targetX, targetY float64) Volley {
	v := Volley{Angle: s.Angle}

	period := Period(s.Behavior)
	if period <= 0 || frame%period != 0 {
		return v
	}

	speed := cfg.Projectile.EnemySpeed
	switch s.Behavior {
	case Burst:
		n := cfg.Pattern.BurstCount
		v.Spawns = make([]Spawn, 0, n)
		for i := 0; i < n; i++ {
			angle := float64(i) / float64(n) * 2 * math.Pi
			v.Spawns = append(v.Spawns, spawnAt(s, angle, speed))
		}
	case Spiral:
		v.Spawns = []Spawn{spawnAt(s, s.Angle, speed)}
		if s.Flipped {
			v.Angle = s.Angle - cfg.Pattern.SpiralStep
		} else {
			v.Angle = s.Angle + cfg.Pattern.SpiralStep
		}
	case Homing:
		angle := gamemath.AngleTo(s.X, s.Y, targetX, targetY)
		v.Spawns = []Spawn{spawnAt(s, angle, speed)}
	}
	return v
}

func spawnAt(s State, angle, speed float64) Spawn {
	dx, dy := gamemath.Polar(angle, speed)
	return Spawn{X: s.X, Y: s.Y, DX: dx, DY: dy}
}
