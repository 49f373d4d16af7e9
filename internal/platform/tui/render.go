package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// palette maps core.Color to terminal colors. ColorDefault is absent and
// leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorNavy:    lipgloss.Color("18"),
	core.ColorRed:     lipgloss.Color("9"),
	core.ColorGreen:   lipgloss.Color("10"),
	core.ColorYellow:  lipgloss.Color("11"),
	core.ColorBlue:    lipgloss.Color("12"),
	core.ColorMagenta: lipgloss.Color("13"),
	core.ColorCyan:    lipgloss.Color("14"),
	core.ColorWhite:   lipgloss.Color("15"),
	core.ColorGray:    lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per foreground/background pair.
var styles = map[colorPair]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	pair := colorPair{fg, bg}
	if s, ok := styles[pair]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		s = s.Background(c)
	}
	styles[pair] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
