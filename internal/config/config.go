// Package config provides YAML/TOML-based configuration loading for
// Flappy Dragon.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// DragonConfig contains all configuration for Flappy Dragon.
type DragonConfig struct {
	Screen    ScreenConfig    `yaml:"screen" toml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles" toml:"obstacles"`
}

// ScreenConfig defines the character grid the game is drawn on.
type ScreenConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PhysicsConfig defines the player physics and the tick cadence.
type PhysicsConfig struct {
	Gravity          float32 `yaml:"gravity" toml:"gravity"`
	TerminalVelocity float32 `yaml:"terminal_velocity" toml:"terminal_velocity"`
	FlapStrength     float32 `yaml:"flap_strength" toml:"flap_strength"`
	FrameDurationMs  float64 `yaml:"frame_duration_ms" toml:"frame_duration_ms"`
	// ClampTerminal clamps velocity after gravity is added instead of
	// letting it overshoot the terminal value for one tick.
	ClampTerminal bool `yaml:"clamp_terminal" toml:"clamp_terminal"`
}

// PlayerConfig defines where the player starts.
type PlayerConfig struct {
	StartX int `yaml:"start_x" toml:"start_x"`
	StartY int `yaml:"start_y" toml:"start_y"`
}

// ObstaclesConfig defines obstacle placement and gap narrowing.
type ObstaclesConfig struct {
	GapMin  int `yaml:"gap_min" toml:"gap_min"` // Lowest gap center row (inclusive)
	GapMax  int `yaml:"gap_max" toml:"gap_max"` // Highest gap center row (exclusive)
	MaxSize int `yaml:"max_size" toml:"max_size"`
	MinSize int `yaml:"min_size" toml:"min_size"`
}

// GapSize returns the gap height for the given score. It narrows by one row
// per point down to MinSize.
func (o ObstaclesConfig) GapSize(score int) int {
	return core.Max(o.MinSize, o.MaxSize-score)
}

// Validate checks the configuration for values the game cannot run with.
func (c DragonConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Physics.FrameDurationMs <= 0:
		return fmt.Errorf("%w: frame_duration_ms must be positive, got %v", ErrInvalid, c.Physics.FrameDurationMs)
	case c.Obstacles.GapMin >= c.Obstacles.GapMax:
		return fmt.Errorf("%w: gap_min (%d) must be below gap_max (%d)", ErrInvalid, c.Obstacles.GapMin, c.Obstacles.GapMax)
	case c.Obstacles.MinSize < 0:
		return fmt.Errorf("%w: min_size must not be negative, got %d", ErrInvalid, c.Obstacles.MinSize)
	case c.Obstacles.MaxSize < c.Obstacles.MinSize:
		return fmt.Errorf("%w: max_size (%d) must not be below min_size (%d)", ErrInvalid, c.Obstacles.MaxSize, c.Obstacles.MinSize)
	}
	return nil
}
