// Package console runs the game directly on a tcell screen, as an
// alternative to the Bubble Tea backend.
package console

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/logging"
)

// display is the part of tcell.Screen the frame loop draws on.
type display interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Sync()
}

// palette maps core.Color to tcell colors.
var palette = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorDefault,
	core.ColorBlack:   tcell.ColorBlack,
	core.ColorNavy:    tcell.ColorNavy,
	core.ColorRed:     tcell.ColorRed,
	core.ColorGreen:   tcell.ColorGreen,
	core.ColorYellow:  tcell.ColorYellow,
	core.ColorBlue:    tcell.ColorBlue,
	core.ColorMagenta: tcell.ColorFuchsia,
	core.ColorCyan:    tcell.ColorAqua,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorGray:    tcell.ColorGray,
}

func styleFor(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(palette[fg]).Background(palette[bg])
}

// blit copies the screen buffer onto the display.
func blit(d display, s *core.Screen) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			d.SetContent(x, y, c.Rune, nil, styleFor(c.FG, c.BG))
		}
	}
}

// mapKey translates a tcell key event to a game key.
func mapKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyEnter:
		return core.KeyConfirm
	case tcell.KeyEscape:
		return core.KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return core.KeyFlap
		case 'p', 'P':
			return core.KeyConfirm
		case 'q', 'Q':
			return core.KeyQuit
		}
	}
	return core.KeyNone
}

// Run initializes a terminal screen and plays until the game quits, the
// user presses Ctrl+C or ctx is cancelled.
func Run(ctx context.Context, state *dragon.State, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = logging.Discard()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval(cfg.TickRate))
	defer ticker.Stop()

	logger.Info("session started", "backend", "tcell", "fps", cfg.TickRate)
	err = loop(ctx, screen, state, cfg, logger, events, ticker.C)
	logger.Info("session ended", "mode", state.Mode(), "score", state.Score())

	if ctx.Err() != nil {
		return nil
	}
	return err
}

func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// loop pumps one game frame per tick until the game asks to quit.
func loop(
	ctx context.Context,
	d display,
	state *dragon.State,
	cfg core.RuntimeConfig,
	logger *log.Logger,
	events <-chan tcell.Event,
	ticks <-chan time.Time,
) error {
	buf := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	pending := core.KeyNone
	lastMode := state.Mode()
	var lastTick time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				d.Sync()
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlC {
					return nil
				}
				if k := mapKey(e); k != core.KeyNone {
					pending = k
				}
			}

		case now := <-ticks:
			elapsed := 0.0
			if !lastTick.IsZero() {
				elapsed = float64(now.Sub(lastTick)) / float64(time.Millisecond)
			}
			lastTick = now

			frame := core.NewFrame(buf, elapsed, pending)
			state.Tick(frame)
			pending = core.KeyNone

			if mode := state.Mode(); mode != lastMode {
				logger.Info("mode changed", "from", lastMode, "to", mode, "score", state.Score())
				lastMode = mode
			}

			blit(d, buf)
			d.Show()

			if frame.Quitting() {
				return nil
			}
		}
	}
}
