package dragon

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Obstacle is a vertical wall with a single gap of Size rows centered on GapY.
type Obstacle struct {
	X    int // World-space column
	GapY int // Row at the center of the gap
	Size int // Height of the gap
}

// NewObstacle places an obstacle at world column x with a random gap sized
// for the given score.
func NewObstacle(x, score int, rng *rand.Rand, cfg config.ObstaclesConfig) *Obstacle {
	return &Obstacle{
		X:    x,
		GapY: cfg.GapMin + rng.Intn(cfg.GapMax-cfg.GapMin),
		Size: cfg.GapSize(score),
	}
}

// GapTop returns the first gap row; rows above it are wall.
func (o *Obstacle) GapTop() int {
	return o.GapY - o.Size/2
}

// GapBottom returns the last gap row for collision purposes; rows below it
// are wall.
func (o *Obstacle) GapBottom() int {
	return o.GapY + o.Size/2
}

// Render draws both wall segments, scrolled relative to the player's progress.
func (o *Obstacle) Render(f *core.Frame, playerX int) {
	screenX := o.X - playerX
	h := f.Screen.Height()

	// Top segment
	for y := 0; y < core.Clamp(o.GapTop(), 0, h); y++ {
		f.Set(screenX, y, core.ColorRed, core.ColorBlack, ObstacleChar)
	}

	// Bottom segment
	for y := core.Max(o.GapBottom(), 0); y < h; y++ {
		f.Set(screenX, y, core.ColorRed, core.ColorBlack, ObstacleChar)
	}
}

// Hits reports whether the player collides with the obstacle. A hit is only
// possible on the tick the player's column equals the obstacle's column.
func (o *Obstacle) Hits(p *Player) bool {
	if p.X != o.X {
		return false
	}
	row := p.Row()
	return row < o.GapTop() || row > o.GapBottom()
}
