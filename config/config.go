package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every system.
const Default ecs.LayerID = 0

// PhysicsConfig contains the per-tick movement constants. Values are in
// pixels per tick and are not scaled by frame time.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"moveSpeed"`
	Damping      float64 `yaml:"damping"`
	JumpSpeed    float64 `yaml:"jumpSpeed"`
	RunThreshold float64 `yaml:"runThreshold"` // |vx| above this counts as running
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Health       int     `yaml:"health"`
	SizeRatio    float64 `yaml:"sizeRatio"`    // player side length relative to viewport height
	SpawnOffsetX float64 `yaml:"spawnOffsetX"` // distance from the left edge of the first platform
	FallDamage   int     `yaml:"fallDamage"`
}

// InventoryConfig contains the starting consumables and their effects
type InventoryConfig struct {
	HealthPotions int `yaml:"healthPotions"`
	Shields       int `yaml:"shields"`
	PotionHeal    int `yaml:"potionHeal"`
	ShieldHits    int `yaml:"shieldHits"` // hits a shield absorbs before breaking
}

// AnimationConfig contains the player frame intervals
type AnimationConfig struct {
	IdleInterval    time.Duration               `yaml:"idleInterval"`
	RunningInterval map[VariantID]time.Duration `yaml:"runningInterval"`
}

// WorldConfig contains world and viewport dimensions
type WorldConfig struct {
	Width float64 `yaml:"width"`
	// ViewportRatio is the share of the window height used by the game
	// viewport; the HUD strip takes the rest.
	ViewportRatio float64 `yaml:"viewportRatio"`
	// DesignHeight is the height of the background art that level
	// coordinates are authored against.
	DesignHeight float64 `yaml:"designHeight"`
	CellSize     int     `yaml:"cellSize"`
}

// RenderConfig contains colors and sizes used by the renderers
type RenderConfig struct {
	Parallax       float64 `yaml:"parallax"`
	StarCount      int     `yaml:"starCount"`
	ShieldRadius   float32 `yaml:"shieldRadius"`
	PickupBob      float64 `yaml:"pickupBob"` // pixels of vertical bob for pickups
	PickupBobSecs  float32 `yaml:"pickupBobSecs"`
	Sky            color.RGBA
	Star           color.RGBA
	PlatformFill   color.RGBA
	PlatformStroke color.RGBA
	DecorFill      color.RGBA
	PickupFill     color.RGBA
	PickupCross    color.RGBA
	PlayerFallback color.RGBA
	Shield         color.RGBA
	Endpoint       color.RGBA
	Label          color.RGBA
}

// HUDConfig contains the layout of the status strip below the viewport
type HUDConfig struct {
	Margin       float32 `yaml:"margin"`
	BarWidth     float32 `yaml:"barWidth"`
	BarHeight    float32 `yaml:"barHeight"`
	TweenSeconds float32 `yaml:"tweenSeconds"`
	Background   color.RGBA
	BarEmpty     color.RGBA
	BarFill      color.RGBA
	BarLow       color.RGBA
	Text         color.RGBA
}

// StoryPage is one page of the intro story
type StoryPage struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// StoryConfig contains the intro pages shown before a story run
type StoryConfig struct {
	Pages []StoryPage `yaml:"pages"`
}

// EndingConfig contains the text of the ending overlay
type EndingConfig struct {
	SuccessTitle string        `yaml:"successTitle"`
	SuccessText  string        `yaml:"successText"`
	FailureTitle string        `yaml:"failureTitle"`
	FailureText  string        `yaml:"failureText"`
	FadeIn       time.Duration `yaml:"fadeIn"`
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	Enabled bool `yaml:"enabled"`
}

var Physics PhysicsConfig
var Player PlayerConfig
var Inventory InventoryConfig
var Animation AnimationConfig
var World WorldConfig
var Render RenderConfig
var HUD HUDConfig
var Story StoryConfig
var Ending EndingConfig
var Debug DebugConfig

var (
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Cyan  = color.RGBA{0, 255, 255, 255}
)

func init() {
	SetDefaults()
}

// SetDefaults restores every tunable to its built-in value.
func SetDefaults() {
	Physics = PhysicsConfig{
		Gravity:      0.3,
		MoveSpeed:    3,
		Damping:      0.9,
		JumpSpeed:    8,
		RunThreshold: 0.1,
	}

	Player = PlayerConfig{
		Health:       100,
		SizeRatio:    109.0 / 512.0,
		SpawnOffsetX: 50,
		FallDamage:   100,
	}

	Inventory = InventoryConfig{
		HealthPotions: 2,
		Shields:       1,
		PotionHeal:    50,
		ShieldHits:    3,
	}

	Animation = AnimationConfig{
		IdleInterval: 300 * time.Millisecond,
		RunningInterval: map[VariantID]time.Duration{
			VariantStory:  100 * time.Millisecond,
			VariantPickup: 70 * time.Millisecond,
		},
	}

	World = WorldConfig{
		Width:         4000,
		ViewportRatio: 513.0 / 749.0,
		DesignHeight:  512,
		CellSize:      16,
	}

	Render = RenderConfig{
		Parallax:       0.3,
		StarCount:      100,
		ShieldRadius:   30,
		PickupBob:      3,
		PickupBobSecs:  0.8,
		Sky:            color.RGBA{0x1a, 0x1a, 0x2e, 255},
		Star:           White,
		PlatformFill:   color.RGBA{0x22, 0x8b, 0x22, 255},
		PlatformStroke: color.RGBA{0x32, 0xcd, 0x32, 255},
		DecorFill:      color.RGBA{0x55, 0x55, 0x77, 255},
		PickupFill:     Red,
		PickupCross:    White,
		PlayerFallback: color.RGBA{0xff, 0x6b, 0x6b, 255},
		Shield:         Cyan,
		Endpoint:       color.RGBA{0x00, 0x88, 0xff, 255},
		Label:          White,
	}

	HUD = HUDConfig{
		Margin:       12,
		BarWidth:     220,
		BarHeight:    18,
		TweenSeconds: 0.35,
		Background:   color.RGBA{20, 20, 30, 255},
		BarEmpty:     color.RGBA{40, 40, 40, 255},
		BarFill:      color.RGBA{40, 220, 40, 255},
		BarLow:       color.RGBA{220, 60, 40, 255},
		Text:         White,
	}

	Story = StoryConfig{
		Pages: []StoryPage{
			{
				Title: "Night Shift",
				Body:  "The alarms went off at 3 a.m.\nEvery door in the lab sealed itself shut.",
			},
			{
				Title: "The Discovery",
				Body:  "Your notes hold the secret the lab wants buried.\nYou cannot let them stay here.",
			},
			{
				Title: "Escape",
				Body:  "Run with the arrow keys, jump with Space.\nH drinks a potion, S raises a shield.\nReach the exit before it is too late.",
			},
		},
	}

	Ending = EndingConfig{
		SuccessTitle: "Mission Complete!",
		SuccessText: "You made it out of the lab.\n\nThe secret you carry will change the world.\n" +
			"Thanks to you, humanity has found the key\nto breaking the limits of technology.\n\nA new era is coming!",
		FailureTitle: "Mission Failed",
		FailureText: "You fell during the escape...\n\nBut your courage inspired the other researchers.\n" +
			"They will carry on your will\nand keep searching for the truth.\n\nYour sacrifice was not in vain!",
		FadeIn: 400 * time.Millisecond,
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}

// RunningInterval returns the running frame interval for a variant,
// falling back to the story interval.
func RunningInterval(v VariantID) time.Duration {
	if d, ok := Animation.RunningInterval[v]; ok {
		return d
	}
	return Animation.RunningInterval[VariantStory]
}
