package stage

import (
	"testing"

	"github.com/automoto/lulzmaku/pattern"
)

func TestStageOneTable(t *testing.T) {
	s := StageOne()

	frames := s.Frames()
	expectedFrames := []int{1, 600, 1000}
	if len(frames) != len(expectedFrames) {
		t.Fatalf("Frames() = %v, expected %v", frames, expectedFrames)
	}
	for i := range frames {
		if frames[i] != expectedFrames[i] {
			t.Fatalf("Frames() = %v, expected %v", frames, expectedFrames)
		}
	}

	counts := map[int]pattern.Behavior{1: pattern.Homing, 600: pattern.Spiral, 1000: pattern.Burst}
	sizes := map[int]int{1: 3, 600: 1, 1000: 2}
	for frame, b := range counts {
		spawns := s.SpawnsAt(frame)
		if len(spawns) != sizes[frame] {
			t.Errorf("frame %d has %d spawns, expected %d", frame, len(spawns), sizes[frame])
		}
		for _, sp := range spawns {
			if sp.Behavior != b {
				t.Errorf("frame %d spawn behavior = %v, expected %v", frame, sp.Behavior, b)
			}
		}
	}

	if got := s.SpawnsAt(2); len(got) != 0 {
		t.Errorf("SpawnsAt(2) = %v, expected none", got)
	}
}

func TestWon(t *testing.T) {
	s := StageOne()
	tests := []struct {
		frame    int
		allDead  bool
		expected bool
	}{
		{999, true, false},
		{1000, true, false},
		{1001, false, false},
		{1001, true, true},
	}

	for _, tc := range tests {
		if got := s.Won(tc.frame, tc.allDead); got != tc.expected {
			t.Errorf("Won(%d, %v) = %v, expected %v", tc.frame, tc.allDead, got, tc.expected)
		}
	}
}
