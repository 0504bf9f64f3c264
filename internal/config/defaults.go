package config

import (
	_ "embed"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the default doodle configuration.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Physics: Physics{
			Gravity:         1000,
			ReboundVelocity: -575,
			TickDuration:    0.016,
		},
		Viewport: Viewport{
			Width:  400,
			Height: 700,
		},
		Doodle: Doodle{
			Width:  20,
			Height: 40,
			StartX: 200,
			StartY: 551,
			MoveX:  10,
			JumpX:  50,
			JumpY:  170,
		},
		Platforms: Platforms{
			Width:   40,
			Height:  10,
			StartX:  200,
			StartY:  601,
			CenterX: 200,
		},
		Colors: Colors{
			Doodle:   "bright_yellow",
			Platform: "gray",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDoodleYAML
}
