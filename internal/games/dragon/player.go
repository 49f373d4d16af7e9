package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	ObstacleChar = '|'
)

// Player is the dragon. X is world-space progress through the level, Y is
// the vertical position in screen rows with positive velocity pointing down.
// Y and Velocity are single precision: the terminal velocity check relies on
// float32 rounding, where ten gravity steps from rest land just above 2.0.
type Player struct {
	X        int
	Y        float32
	Velocity float32

	physics config.PhysicsConfig
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(x, y int, physics config.PhysicsConfig) *Player {
	return &Player{
		X:        x,
		Y:        float32(y),
		Velocity: 0,
		physics:  physics,
	}
}

// GravityAndMove runs one physics tick: accelerate toward terminal velocity,
// fall by the resulting velocity and advance one column.
func (p *Player) GravityAndMove() {
	// Gravity is only applied below terminal velocity; the tick that crosses
	// it may overshoot unless clamping is enabled.
	if p.Velocity < p.physics.TerminalVelocity {
		p.Velocity += p.physics.Gravity
		if p.physics.ClampTerminal && p.Velocity > p.physics.TerminalVelocity {
			p.Velocity = p.physics.TerminalVelocity
		}
	}

	p.Y += p.Velocity
	p.X++

	// Zero is the top of the screen
	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap sets an upward velocity. Every call re-triggers the impulse.
func (p *Player) Flap() {
	p.Velocity = -p.physics.FlapStrength
}

// Row returns the screen row the player occupies.
func (p *Player) Row() int {
	return int(p.Y)
}

// Render draws the player in the first screen column.
func (p *Player) Render(f *core.Frame) {
	f.Set(0, p.Row(), core.ColorYellow, core.ColorBlack, PlayerChar)
}
