package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/logging"
	"github.com/vovakirdan/flappy-dragon/internal/platform/console"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	flagFPS     int
	flagBackend string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start Flappy Dragon.

Controls:
  P/Enter    - Play / play again
  Space      - Flap
  Q/Esc      - Quit (menu and end screen)
  Ctrl+C     - Exit immediately
  Ctrl+S     - Save a text screenshot (tui backend)

Backends:
  tui    - Bubble Tea (default)
  tcell  - Direct tcell screen

Examples:
  dragon play
  dragon play --fps 30
  dragon play --backend tcell
  dragon play --config ./my-dragon.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	cmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend: tui or tcell")
}

type runner func(ctx context.Context, state *dragon.State, cfg core.RuntimeConfig, logger *log.Logger) error

func runPlay(cmd *cobra.Command, _ []string) error {
	run, err := backend(flagBackend)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{Level: flagLogLevel, File: flagLogFile})
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	cfg := runtimeConfig(gameCfg, flagFPS)
	seed := resolveSeed(flagSeed)

	// Checked here once for both backends
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		warnIfSmall(logger, w, h, cfg)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting game", "backend", flagBackend, "seed", seed, "config", flagConfig)
	state := dragon.New(gameCfg, seed)

	if err := run(ctx, state, cfg, logger); err != nil {
		logger.Error("game stopped", "error", err)
		return err
	}
	return nil
}

// runtimeConfig sizes the backend grid from the game config.
func runtimeConfig(gameCfg config.DragonConfig, fps int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = gameCfg.Screen.Width
	cfg.ScreenH = gameCfg.Screen.Height
	cfg.TickRate = fps
	return cfg
}

// resolveSeed uses a time-based seed if none was given.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// warnIfSmall logs when the terminal cannot show the whole grid. The grid is
// fixed, so a smaller terminal clips it.
func warnIfSmall(logger *log.Logger, w, h int, cfg core.RuntimeConfig) bool {
	if w >= cfg.ScreenW && h >= cfg.ScreenH {
		return false
	}
	logger.Warn("terminal smaller than the game grid",
		"width", w, "height", h,
		"need_width", cfg.ScreenW, "need_height", cfg.ScreenH,
	)
	return true
}

// backend selects the display backend by name.
func backend(name string) (runner, error) {
	switch name {
	case "", "tui":
		return tui.Run, nil
	case "tcell":
		return console.Run, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want tui or tcell)", name)
	}
}
