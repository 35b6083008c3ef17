package config

import (
	"image/color"
	"math"
	"time"
)

// Config holds general window and playfield configuration
type Config struct {
	Width       int
	Height      int
	HUDWidth    int // Reserved strip on the right edge, excluded from the playfield
	WindowTitle string
}

// PlayfieldWidth returns the width of the world area (window minus HUD strip)
func (c *Config) PlayfieldWidth() float64 {
	return float64(c.Width - c.HUDWidth)
}

// PlayfieldHeight returns the height of the world area
func (c *Config) PlayfieldHeight() float64 {
	return float64(c.Height)
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64
	SlowSpeed float64 // Substituted while the slow modifier is held

	// Lives
	MaxLives     int
	InvulnFrames int

	// Firing
	FireCooldown    time.Duration // Wall-clock minimum between two triggers
	ShotsPerTrigger int
	ShotSpeed       float64
	ShotRadius      float64
	ShotOffsetX     float64 // First shot spawns at x+w-ShotOffsetX
	ShotSpacing     float64 // Horizontal gap between side-by-side shots

	// Dimensions
	Width  float64
	Height float64

	// Spawn point, Y is measured up from the bottom of the playfield
	SpawnX            float64
	SpawnBottomOffset float64

	// Sprite draw offset relative to the hitbox origin
	SpriteOffsetX float64
	SpriteOffsetY float64

	Color color.RGBA
}

// ProjectileConfig contains bullet rendering and enemy bullet configuration
type ProjectileConfig struct {
	EnemyRadius float64
	EnemySpeed  float64
	EnemyColor  color.RGBA
	PlayerColor color.RGBA

	// Sprite draw offsets relative to the projectile center
	PlayerSpriteOffsetX float64
	PlayerSpriteOffsetY float64
	EnemySpriteOffsetX  float64
	EnemySpriteOffsetY  float64
}

// PatternConfig contains the firing rules for each enemy behavior
type PatternConfig struct {
	BurstPeriod int // frames
	BurstCount  int

	SpiralPeriod int // frames
	SpiralStep   float64

	HomingPeriod int // frames
}

// EnemyConfig contains enemy rendering configuration
type EnemyConfig struct {
	Color         color.RGBA
	SpriteOffsetX float64
	SpriteOffsetY float64
	LabelOffsetY  float64 // HP label baseline above the enemy center
}

// TransitionConfig contains the screen fade configuration
type TransitionConfig struct {
	FadeOut      time.Duration
	FadeIn       time.Duration
	OverlayColor color.RGBA
}

// HUDConfig contains HUD strip and gameplay overlay text configuration
type HUDConfig struct {
	LivesX, LivesY       float64 // Offsets inside the HUD strip
	ShipIconX, ShipIconY float64
	PromptX, PromptY     float64 // "PRESS ENTER" lines under the lives counter
	PromptLineGap        float64
	TextColor            color.RGBA
	WonColor             color.RGBA
}

// TitleConfig contains title screen configuration
type TitleConfig struct {
	BackgroundColor color.RGBA
	LogoOffsetX     float64 // Logo is drawn at width/2 - LogoOffsetX
	LogoY           float64
	Prompt          string
	PromptOffsetX   float64
	PromptOffsetY   float64
	TextColor       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle    bool   // Start on the gameplay screen
	ShowHitboxes bool   // Outline player rect and projectile/enemy circles
	StageFile    string // Embedded stage file to play
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Projectile ProjectileConfig
var Pattern PatternConfig
var Enemy EnemyConfig
var Transition TransitionConfig
var HUD HUDConfig
var Title TitleConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	HUDBlue      = color.RGBA{R: 0, G: 124, B: 164, A: 255} // #007ca4, same as the HUD frame
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:       600,
		Height:      700,
		HUDWidth:    100,
		WindowTitle: "lulzmaku",
	}

	Player = PlayerConfig{
		Speed:     5,
		SlowSpeed: 3,

		MaxLives:     3,
		InvulnFrames: 120,

		FireCooldown:    100 * time.Millisecond,
		ShotsPerTrigger: 2,
		ShotSpeed:       7,
		ShotRadius:      7,
		ShotOffsetX:     13,
		ShotSpacing:     15,

		Width:  10,
		Height: 10,

		SpawnX:            190,
		SpawnBottomOffset: 25,

		SpriteOffsetX: -11,
		SpriteOffsetY: -9,

		Color: Green,
	}

	Projectile = ProjectileConfig{
		EnemyRadius: 5,
		EnemySpeed:  4,
		EnemyColor:  Red,
		PlayerColor: Red,

		PlayerSpriteOffsetX: -16,
		PlayerSpriteOffsetY: -20,
		EnemySpriteOffsetX:  -16,
		EnemySpriteOffsetY:  -15,
	}

	Pattern = PatternConfig{
		BurstPeriod: 60,
		BurstCount:  20,

		SpiralPeriod: 5,
		SpiralStep:   math.Pi / 10,

		HomingPeriod: 30,
	}

	Enemy = EnemyConfig{
		Color:         White,
		SpriteOffsetX: -16,
		SpriteOffsetY: -16,
		LabelOffsetY:  20,
	}

	Transition = TransitionConfig{
		FadeOut:      400 * time.Millisecond,
		FadeIn:       400 * time.Millisecond,
		OverlayColor: BlackOverlay,
	}

	HUD = HUDConfig{
		LivesX:        35,
		LivesY:        30,
		ShipIconX:     5,
		ShipIconY:     10,
		PromptX:       15,
		PromptY:       60,
		PromptLineGap: 20,
		TextColor:     White,
		WonColor:      Yellow,
	}

	Title = TitleConfig{
		BackgroundColor: HUDBlue,
		LogoOffsetX:     210,
		LogoY:           2,
		Prompt:          "ENTER TO START",
		PromptOffsetX:   80,
		PromptOffsetY:   20,
		TextColor:       White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipTitle:    false,
		ShowHitboxes: false,
		StageFile:    "stage1.tmx",
	}
}
