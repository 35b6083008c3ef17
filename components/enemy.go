package components

import (
	"github.com/automoto/lulzmaku/pattern"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Behavior pattern.Behavior
	Tag      string  // Behavior tag as written in the stage
	Angle    float64 // Spiral accumulator
	Flipped  bool
	Dead     bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
