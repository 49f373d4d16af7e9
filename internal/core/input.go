package core

// Key is the key polled for a single frame. A frame carries at most one
// key, the same way a terminal engine reports the last key pressed.
type Key int

const (
	KeyNone    Key = iota
	KeyFlap        // Space - flap wings
	KeyConfirm     // P - play / play again
	KeyQuit        // Q - quit from menu or end screen
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyFlap:
		return "Flap"
	case KeyConfirm:
		return "Confirm"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
