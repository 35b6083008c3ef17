// Package stage describes enemy waves as a declarative table of frame numbers
// to spawn lists, independent of the entity update code.
package stage

import (
	"sort"

	"github.com/automoto/lulzmaku/pattern"
)

// Spawn describes one enemy entering the playfield.
type Spawn struct {
	X, Y     float64
	Radius   float64
	Health   int
	Behavior pattern.Behavior
	Tag      string // Behavior tag as written in the stage source
	Flipped  bool
}

// Stage is a frame-indexed spawn table plus the frame after which clearing
// the field wins the stage.
type Stage struct {
	Name     string
	WinAfter int
	spawns   map[int][]Spawn
}

// New creates an empty stage.
func New(name string, winAfter int) *Stage {
	return &Stage{
		Name:     name,
		WinAfter: winAfter,
		spawns:   make(map[int][]Spawn),
	}
}

// Add appends spawns to the given frame.
func (s *Stage) Add(frame int, spawns ...Spawn) *Stage {
	s.spawns[frame] = append(s.spawns[frame], spawns...)
	return s
}

// SpawnsAt returns the spawns scheduled for a frame.
func (s *Stage) SpawnsAt(frame int) []Spawn {
	return s.spawns[frame]
}

// Frames returns every frame that has spawns, in ascending order.
func (s *Stage) Frames() []int {
	frames := make([]int, 0, len(s.spawns))
	for f := range s.spawns {
		frames = append(frames, f)
	}
	sort.Ints(frames)
	return frames
}

// Won reports whether the stage is cleared: past WinAfter with no enemy left.
func (s *Stage) Won(frame int, allDead bool) bool {
	return frame > s.WinAfter && allDead
}

func enemy(x, y float64, health int, b pattern.Behavior, flipped bool) Spawn {
	return Spawn{X: x, Y: y, Radius: 10, Health: health, Behavior: b, Tag: b.String(), Flipped: flipped}
}

// StageOne is the built-in first stage.
func StageOne() *Stage {
	return New("stage one", 1000).
		Add(1,
			enemy(20, 120, 10, pattern.Homing, false),
			enemy(220, 120, 10, pattern.Homing, false),
			enemy(420, 120, 10, pattern.Homing, false),
		).
		Add(600,
			enemy(220, 120, 60, pattern.Spiral, false),
		).
		Add(1000,
			enemy(120, 120, 30, pattern.Burst, false),
			enemy(320, 120, 30, pattern.Burst, false),
		)
}
