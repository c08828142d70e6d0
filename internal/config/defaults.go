package config

import (
	_ "embed"
)

//go:embed defaults/stickhero.yaml
var defaultStickHeroYAML []byte

// DefaultStickHero returns the built-in Stick Hero configuration.
// It mirrors defaults/stickhero.yaml and is used when the embedded YAML cannot be parsed.
func DefaultStickHero() StickHeroConfig {
	return StickHeroConfig{
		World: WorldConfig{
			Width:  600,
			Height: 500,
		},
		Avatar: AvatarConfig{
			OriginX: 10,
			OriginY: 350,
			Width:   42,
			Height:  45,
			Speed:   3,
		},
		Rod: RodConfig{
			Width:          5,
			GrowRate:       2,
			RotationSpeed:  0.05,
			ReachTolerance: 15,
		},
		Platforms: PlatformsConfig{
			FirstWidth:  60,
			SecondX:     200,
			SecondWidth: 60,
			MinGap:      50,
			MaxGap:      150,
			MinWidth:    40,
			MaxWidth:    90,
			ScrollSpeed: 3,
		},
		Landing: LandingConfig{
			Buffer: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultStickHeroYAML
}
