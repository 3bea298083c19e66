package config

import (
	_ "embed"
)

//go:embed defaults/player.yaml
var defaultPlayerYAML []byte

// DefaultPlayerConfig returns the default player configuration.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Physics: PlayerPhysics{
			Gravity:      2000,
			JumpSpeed:    -700,
			MoveSpeed:    300,
			MaxFallSpeed: 0,
		},
		Body: PlayerBody{
			Width:  36,
			Height: 66,
		},
		Runtime: Runtime{
			TickRate: 60,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlayerYAML
}
