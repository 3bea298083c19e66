// platformer is a headless driver for the tile-grid collision engine.
//
// Usage:
//
//	platformer levels              - List built-in levels
//	platformer check <level>       - Validate a level's tile layout
//	platformer simulate <level>    - Run scripted input and print a trace
//
// A level is a built-in level ID or a path to a .yaml/.yml file.
//
// Global flags:
//
//	--fps <rate>      - Override the tick rate (default from config: 60)
//	--config <path>   - Player config file (default search: ~/.platformer/configs, ./configs)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-platformer/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Tile platformer - headless collision engine driver",
	Long: `Tile platformer runs levels for the tile-grid collision engine without
a window: it validates layouts and plays scripted input through the player
controller, printing what happened tick by tick.

Available commands:
  levels    - Show all built-in levels
  check     - Validate a level's tile layout
  simulate  - Run a scripted input sequence

Examples:
  platformer levels
  platformer check 01-intro
  platformer simulate 01-intro --script "right:30 jump right:45 idle:60"
  platformer simulate ./mylevel.yaml --frames 600 --every 10`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to player config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the stderr logger shared by all commands.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
}

// loadPlayerConfig loads the player config and applies the --fps override.
func loadPlayerConfig(cmd *cobra.Command) (config.PlayerConfig, error) {
	cfg, err := config.LoadPlayer(flagConfig)
	if err != nil {
		return config.PlayerConfig{}, err
	}
	if f := cmd.Flag("fps"); f != nil && f.Changed {
		cfg.Runtime.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.PlayerConfig{}, err
	}
	return cfg, nil
}
