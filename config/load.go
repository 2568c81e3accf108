package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of an override file. Every section is optional;
// keys missing from the file keep their current value.
type fileConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Inventory InventoryConfig `yaml:"inventory"`
	Animation AnimationConfig `yaml:"animation"`
	World     WorldConfig     `yaml:"world"`
	Render    RenderConfig    `yaml:"render"`
	HUD       HUDConfig       `yaml:"hud"`
	Story     StoryConfig     `yaml:"story"`
	Ending    EndingConfig    `yaml:"ending"`
	Audio     AudioConfig     `yaml:"audio"`
	Debug     DebugConfig     `yaml:"debug"`
}

// LoadFile reads a YAML override file and applies it on top of the current
// configuration. Durations use Go syntax such as "300ms".
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML overrides and installs them. Nothing is changed when
// decoding or validation fails.
func Apply(data []byte) error {
	fc := fileConfig{
		Physics:   Physics,
		Player:    Player,
		Inventory: Inventory,
		Animation: Animation,
		World:     World,
		Render:    Render,
		HUD:       HUD,
		Story:     Story,
		Ending:    Ending,
		Audio:     Audio,
		Debug:     Debug,
	}
	// the decoder writes into existing maps, so hand it a private copy
	fc.Animation.RunningInterval = maps.Clone(Animation.RunningInterval)

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := fc.validate(); err != nil {
		return err
	}

	Physics = fc.Physics
	Player = fc.Player
	Inventory = fc.Inventory
	Animation = fc.Animation
	World = fc.World
	Render = fc.Render
	HUD = fc.HUD
	Story = fc.Story
	Ending = fc.Ending
	Audio = fc.Audio
	Debug = fc.Debug
	return nil
}

func (fc *fileConfig) validate() error {
	var errs []error
	if fc.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player.health must be positive, got %d", fc.Player.Health))
	}
	if fc.Player.SizeRatio <= 0 || fc.Player.SizeRatio >= 1 {
		errs = append(errs, fmt.Errorf("player.sizeRatio must be in (0,1), got %g", fc.Player.SizeRatio))
	}
	if fc.World.Width <= 0 {
		errs = append(errs, fmt.Errorf("world.width must be positive, got %g", fc.World.Width))
	}
	if fc.World.ViewportRatio <= 0 || fc.World.ViewportRatio > 1 {
		errs = append(errs, fmt.Errorf("world.viewportRatio must be in (0,1], got %g", fc.World.ViewportRatio))
	}
	if fc.Animation.IdleInterval <= 0 {
		errs = append(errs, fmt.Errorf("animation.idleInterval must be positive, got %s", fc.Animation.IdleInterval))
	}
	for v, d := range fc.Animation.RunningInterval {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("animation.runningInterval[%s] must be positive, got %s", v, d))
		}
	}
	if fc.Inventory.HealthPotions < 0 || fc.Inventory.Shields < 0 {
		errs = append(errs, errors.New("inventory counts must not be negative"))
	}
	if fc.Ending.FadeIn < 0 {
		errs = append(errs, fmt.Errorf("ending.fadeIn must not be negative, got %s", fc.Ending.FadeIn))
	}
	if len(fc.Story.Pages) == 0 {
		errs = append(errs, errors.New("story.pages must not be empty"))
	}
	return errors.Join(errs...)
}
