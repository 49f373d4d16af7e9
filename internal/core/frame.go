package core

// Frame is the display context handed to the game once per rendered frame.
// It carries the drawing surface, the time elapsed since the previous frame
// and the key polled for this frame. The game may ask the platform to quit
// by calling RequestQuit; the platform observes it after the tick returns.
type Frame struct {
	Screen    *Screen
	ElapsedMs float64 // Milliseconds since the previous frame
	Key       Key     // Key pressed this frame, KeyNone if none

	quitting bool
}

// NewFrame creates a frame over the given screen.
func NewFrame(s *Screen, elapsedMs float64, key Key) *Frame {
	return &Frame{Screen: s, ElapsedMs: elapsedMs, Key: key}
}

// Cls clears the screen.
func (f *Frame) Cls() {
	f.Screen.Clear()
}

// ClsBg clears the screen to the given background color.
func (f *Frame) ClsBg(bg Color) {
	f.Screen.ClearBg(bg)
}

// Set places a single glyph on the screen.
func (f *Frame) Set(x, y int, fg, bg Color, r rune) {
	f.Screen.Set(x, y, fg, bg, r)
}

// Print writes text starting at (x, y).
func (f *Frame) Print(x, y int, text string) {
	f.Screen.DrawText(x, y, text)
}

// PrintCentered writes text centered horizontally on row y.
func (f *Frame) PrintCentered(y int, text string) {
	f.Screen.DrawTextCentered(y, text)
}

// RequestQuit asks the platform to terminate after this frame.
func (f *Frame) RequestQuit() {
	f.quitting = true
}

// Quitting reports whether the game asked to quit during this frame.
func (f *Frame) Quitting() bool {
	return f.quitting
}
