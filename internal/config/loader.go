package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	userConfigRel  = "stickhero/stickhero.yaml"
	localConfigRel = "configs/stickhero.yaml"
)

// Load loads the Stick Hero configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/stickhero/stickhero.yaml ->
// ./configs/stickhero.yaml -> embedded default.
// Only an explicit customPath turns read or parse problems into errors.
func Load(customPath string) (StickHeroConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StickHeroConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return StickHeroConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath, err := xdg.SearchConfigFile(userConfigRel); err == nil {
		if cfg, ok := tryFile(userPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryFile(localConfigRel); ok {
		return cfg, nil
	}

	cfg, err := Parse(defaultStickHeroYAML)
	if err != nil {
		return DefaultStickHero(), nil
	}
	return cfg, nil
}

func tryFile(path string) (StickHeroConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StickHeroConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return StickHeroConfig{}, false
	}
	return cfg, true
}

// Parse decodes YAML on top of the built-in defaults and validates the result,
// so a file only needs the fields it changes.
func Parse(data []byte) (StickHeroConfig, error) {
	cfg := DefaultStickHero()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StickHeroConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return StickHeroConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg StickHeroConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
