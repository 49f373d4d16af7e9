package core

// RuntimeConfig contains the parameters a platform backend runs with.
type RuntimeConfig struct {
	ScreenW  int // Grid width in characters
	ScreenH  int // Grid height in characters
	TickRate int // Render frames per second (default 60)
}

// DefaultConfig returns the 80x50 grid pumped at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  50,
		TickRate: 60,
	}
}
