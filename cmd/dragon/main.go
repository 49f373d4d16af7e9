// dragon is Flappy Dragon, a side-scrolling reflex game for the terminal.
//
// Usage:
//
//	dragon                 - Play the game (same as 'dragon play')
//	dragon play            - Play the game
//	dragon config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Game config file (.yaml or .toml)
//	--seed <value>       - RNG seed for reproducible obstacles
//	--log-file <path>    - Write logs to a file (default: no logs)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - flap through the gaps in your terminal",
	Long: `Flappy Dragon is a side-scrolling reflex game for the terminal.
Your dragon falls under gravity; flap to stay airborne and fly through
the gaps. Every gap you pass scores a point and makes the next one smaller.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  dragon
  dragon play --backend tcell
  dragon play --seed 42 --log-file ~/.dragon/dragon.log
  dragon config --format toml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
