package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultConfig returns the default Flappy Dragon configuration.
func DefaultConfig() DragonConfig {
	return DragonConfig{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
		},
		Physics: PhysicsConfig{
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			FlapStrength:     1.0,
			FrameDurationMs:  75.0,
			ClampTerminal:    false,
		},
		Player: PlayerConfig{
			StartX: 5,
			StartY: 25,
		},
		Obstacles: ObstaclesConfig{
			GapMin:  10,
			GapMax:  40,
			MaxSize: 20,
			MinSize: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
