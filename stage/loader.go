package stage

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/lulzmaku/pattern"
	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// Object group and property names read from Tiled stage maps.
const (
	groupStage      = "Stage"
	groupEnemySpawn = "EnemySpawn"
	propWinAfter    = "winAfter"
	propFrame       = "frame"
	propBehavior    = "behavior"
	propHealth      = "health"
	propRadius      = "radius"
	propFlipped     = "flipped"
)

// Fallbacks for spawns that leave out radius or health.
const (
	defaultRadius    = 10.0
	defaultEnemyLife = 10
)

// ErrInvalidStage marks a stage file that parsed but cannot be played:
// a missing or non-positive winAfter, or a spawn with no positive frame.
var ErrInvalidStage = errors.New("invalid stage")

// Load reads a stage from fsys. The format is chosen by extension: ".tmx"
// for Tiled maps, ".yaml"/".yml" for plain spawn tables. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, stagePath string) (*Stage, error) {
	switch path.Ext(stagePath) {
	case ".tmx":
		return loadTMX(fsys, stagePath)
	case ".yaml", ".yml":
		return loadYAML(fsys, stagePath)
	}
	return nil, fmt.Errorf("load stage %s: unsupported format", stagePath)
}

func loadTMX(fsys fs.FS, tmxPath string) (*Stage, error) {
	stageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	s := New(tmxPath, 0)
	for _, og := range stageMap.ObjectGroups {
		switch og.Name {
		case groupStage:
			for _, o := range og.Objects {
				if v := o.Properties.GetInt(propWinAfter); v > 0 {
					s.WinAfter = v
				}
			}
		case groupEnemySpawn:
			for _, o := range og.Objects {
				tag := o.Properties.GetString(propBehavior)
				radius := o.Properties.GetFloat(propRadius)
				if radius <= 0 {
					radius = defaultRadius
				}
				health := o.Properties.GetInt(propHealth)
				if health <= 0 {
					health = defaultEnemyLife
				}
				frame := o.Properties.GetInt(propFrame)
				if frame <= 0 {
					return nil, fmt.Errorf("load TMX %s: spawn at (%v, %v) frame %d: %w", tmxPath, o.X, o.Y, frame, ErrInvalidStage)
				}
				b, _ := pattern.ParseBehavior(tag)
				s.Add(frame, Spawn{
					X:        o.X,
					Y:        o.Y,
					Radius:   radius,
					Health:   health,
					Behavior: b,
					Tag:      tag,
					Flipped:  o.Properties.GetBool(propFlipped),
				})
			}
		}
	}

	if len(s.spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: no %s objects", tmxPath, groupEnemySpawn)
	}
	if s.WinAfter <= 0 {
		return nil, fmt.Errorf("load TMX %s: no positive %s: %w", tmxPath, propWinAfter, ErrInvalidStage)
	}
	return s, nil
}

type yamlStage struct {
	Name     string      `yaml:"name"`
	WinAfter int         `yaml:"winAfter"`
	Spawns   []yamlSpawn `yaml:"spawns"`
}

type yamlSpawn struct {
	Frame    int     `yaml:"frame"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius"`
	Health   int     `yaml:"health"`
	Behavior string  `yaml:"behavior"`
	Flipped  bool    `yaml:"flipped"`
}

func loadYAML(fsys fs.FS, yamlPath string) (*Stage, error) {
	data, err := fs.ReadFile(fsys, yamlPath)
	if err != nil {
		return nil, fmt.Errorf("read stage %s: %w", yamlPath, err)
	}

	var doc yamlStage
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse stage %s: %w", yamlPath, err)
	}
	if len(doc.Spawns) == 0 {
		return nil, fmt.Errorf("parse stage %s: no spawns", yamlPath)
	}
	if doc.WinAfter <= 0 {
		return nil, fmt.Errorf("parse stage %s: winAfter %d: %w", yamlPath, doc.WinAfter, ErrInvalidStage)
	}

	name := doc.Name
	if name == "" {
		name = yamlPath
	}
	s := New(name, doc.WinAfter)
	for i, sp := range doc.Spawns {
		if sp.Frame <= 0 {
			return nil, fmt.Errorf("parse stage %s: spawn %d frame %d: %w", yamlPath, i, sp.Frame, ErrInvalidStage)
		}
		radius := sp.Radius
		if radius <= 0 {
			radius = defaultRadius
		}
		health := sp.Health
		if health <= 0 {
			health = defaultEnemyLife
		}
		b, _ := pattern.ParseBehavior(sp.Behavior)
		s.Add(sp.Frame, Spawn{
			X:        sp.X,
			Y:        sp.Y,
			Radius:   radius,
			Health:   health,
			Behavior: b,
			Tag:      sp.Behavior,
			Flipped:  sp.Flipped,
		})
	}
	return s, nil
}
