// Package dragon implements Flappy Dragon.
// The player controls a dragon that falls under gravity and flaps upward
// to pass through the gaps of obstacles scrolling in from the right.
package dragon

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Mode is the active screen of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// State is the game controller. It owns the player and the current
// obstacle and is driven by one Tick call per rendered frame.
type State struct {
	mode      Mode
	player    *Player
	obstacle  *Obstacle
	score     int
	frameTime float64 // Milliseconds accumulated since the last physics tick
	config    config.DragonConfig
	rng       *rand.Rand
}

// New creates a game in the menu. The seed drives obstacle placement.
func New(cfg config.DragonConfig, seed int64) *State {
	s := &State{
		mode:   ModeMenu,
		config: cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
	s.reset()
	return s
}

// reset puts a fresh player, obstacle and score in place.
func (s *State) reset() {
	s.player = NewPlayer(s.config.Player.StartX, s.config.Player.StartY, s.config.Physics)
	s.obstacle = NewObstacle(s.config.Screen.Width, 0, s.rng, s.config.Obstacles)
	s.score = 0
	s.frameTime = 0
}

// Restart starts a new run.
func (s *State) Restart() {
	s.reset()
	s.mode = ModePlaying
}

// Tick advances the game by one rendered frame.
func (s *State) Tick(f *core.Frame) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(f)
	case ModePlaying:
		s.play(f)
	case ModeEnd:
		s.dead(f)
	}
}

func (s *State) mainMenu(f *core.Frame) {
	f.Cls()
	f.PrintCentered(5, "Welcome to Flappy Dragon")
	f.PrintCentered(8, "(P) Play Game")
	f.PrintCentered(9, "(Q) Quit Game")

	s.handleMenuKey(f)
}

func (s *State) dead(f *core.Frame) {
	f.Cls()
	f.PrintCentered(5, "You are dead!")
	f.PrintCentered(6, fmt.Sprintf("You earned %d points", s.score))
	f.PrintCentered(8, "(P) Play Again")
	f.PrintCentered(9, "(Q) Quit Game")

	s.handleMenuKey(f)
}

// handleMenuKey handles the keys shared by the menu and the end screen.
func (s *State) handleMenuKey(f *core.Frame) {
	switch f.Key {
	case core.KeyConfirm:
		s.Restart()
	case core.KeyQuit:
		f.RequestQuit()
	}
}

func (s *State) play(f *core.Frame) {
	f.ClsBg(core.ColorNavy)

	// Physics runs at a fixed cadence regardless of the render rate
	s.frameTime += f.ElapsedMs
	if s.frameTime > s.config.Physics.FrameDurationMs {
		s.frameTime = 0
		s.player.GravityAndMove()
	}

	// Flap is applied on the frame it arrives, not on the next physics tick
	if f.Key == core.KeyFlap {
		s.player.Flap()
	}

	s.player.Render(f)
	f.Print(0, 0, "Press SPACE to flap.")
	f.Print(0, 1, fmt.Sprintf("Score: %d", s.score))

	s.obstacle.Render(f, s.player.X)

	if s.player.X > s.obstacle.X {
		s.score++
		s.obstacle = NewObstacle(s.player.X+s.config.Screen.Width, s.score, s.rng, s.config.Obstacles)
	}

	if s.player.Row() > s.config.Screen.Height || s.obstacle.Hits(s.player) {
		s.mode = ModeEnd
	}
}

// Mode returns the active mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the number of obstacles passed in the current run.
func (s *State) Score() int {
	return s.score
}

// Player returns the current player.
func (s *State) Player() *Player {
	return s.player
}

// Obstacle returns the current obstacle.
func (s *State) Obstacle() *Obstacle {
	return s.obstacle
}

// FrameTime returns the milliseconds accumulated toward the next physics tick.
func (s *State) FrameTime() float64 {
	return s.frameTime
}
