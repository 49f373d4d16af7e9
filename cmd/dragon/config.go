package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
config search order:

  --config path -> ~/.dragon/configs/dragon.yaml -> ./configs/dragon.yaml -> built-in defaults

The output can be saved and edited as a starting point.

Examples:
  dragon config > ~/.dragon/configs/dragon.yaml
  dragon config --format toml > dragon.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg, flagFormat)
	if err != nil {
		return err
	}

	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
