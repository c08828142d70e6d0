// Package config provides YAML-based game configuration with embedded defaults.
package config

import (
	"errors"
	"fmt"
	"math"
)

// StickHeroConfig contains all tunables for the Stick Hero game.
type StickHeroConfig struct {
	World     WorldConfig     `yaml:"world"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	Rod       RodConfig       `yaml:"rod"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Landing   LandingConfig   `yaml:"landing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// WorldConfig defines the visible world in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`  // Viewport width, also drives platform generation
	Height float64 `yaml:"height"` // Viewport height, platforms extend to it
}

// AvatarConfig defines the avatar's start position, size and speed.
type AvatarConfig struct {
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"` // Walk, scroll-back and fall speed per tick
}

// RodConfig defines rod growth and rotation.
type RodConfig struct {
	Width          float64 `yaml:"width"`
	GrowRate       float64 `yaml:"grow_rate"`       // Length added per held tick
	RotationSpeed  float64 `yaml:"rotation_speed"`  // Radians per tick
	ReachTolerance float64 `yaml:"reach_tolerance"` // Landing check fires this far before the rod tip
}

// PlatformsConfig defines the seed platforms and the random generation ranges.
type PlatformsConfig struct {
	FirstWidth  float64 `yaml:"first_width"`
	SecondX     float64 `yaml:"second_x"`
	SecondWidth float64 `yaml:"second_width"`
	MinGap      float64 `yaml:"min_gap"` // Inclusive
	MaxGap      float64 `yaml:"max_gap"` // Exclusive
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// LandingConfig defines the landing overlap test.
type LandingConfig struct {
	Buffer float64 `yaml:"buffer"` // Inward tolerance on both avatar edges
}

// ScoringConfig defines score rules.
type ScoringConfig struct {
	// CountFirstLanding makes the very first landing of a run score.
	// Off by default: scoring is armed only after the first return home.
	CountFirstLanding bool `yaml:"count_first_landing"`
}

// Validate reports every invalid field at once.
func (c StickHeroConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("avatar.width", c.Avatar.Width)
	positive("avatar.height", c.Avatar.Height)
	positive("avatar.speed", c.Avatar.Speed)
	positive("rod.width", c.Rod.Width)
	positive("rod.grow_rate", c.Rod.GrowRate)
	positive("platforms.first_width", c.Platforms.FirstWidth)
	positive("platforms.second_width", c.Platforms.SecondWidth)
	positive("platforms.min_width", c.Platforms.MinWidth)
	positive("platforms.scroll_speed", c.Platforms.ScrollSpeed)

	if c.Rod.RotationSpeed <= 0 || c.Rod.RotationSpeed > math.Pi/2 {
		errs = append(errs, fmt.Errorf("rod.rotation_speed must be in (0, pi/2], got %g", c.Rod.RotationSpeed))
	}
	if c.Platforms.MinGap < 0 || c.Platforms.MaxGap <= c.Platforms.MinGap {
		errs = append(errs, fmt.Errorf("platforms gap range [%g, %g) is empty", c.Platforms.MinGap, c.Platforms.MaxGap))
	}
	if c.Platforms.MaxWidth <= c.Platforms.MinWidth {
		errs = append(errs, fmt.Errorf("platforms width range [%g, %g) is empty", c.Platforms.MinWidth, c.Platforms.MaxWidth))
	}
	if c.Avatar.OriginY+c.Avatar.Height >= c.World.Height {
		errs = append(errs, fmt.Errorf("avatar feet (%g) must be above the world bottom (%g)",
			c.Avatar.OriginY+c.Avatar.Height, c.World.Height))
	}
	if c.Landing.Buffer < 0 {
		errs = append(errs, fmt.Errorf("landing.buffer must not be negative, got %g", c.Landing.Buffer))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid stickhero config: %w", errors.Join(errs...))
	}
	return nil
}
