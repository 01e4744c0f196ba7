// spacebattle is a vertical arcade shooter for the terminal, an SSH server
// and a native window.
//
// Usage:
//
//	spacebattle play          - Play in the terminal
//	spacebattle window        - Play in a native 800x600 window (not in -tags nowindow builds)
//	spacebattle serve         - Start SSH server for remote play
//	spacebattle scores        - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.spacebattle/scores.db)
//	--config <path>      - Use a custom config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacebattle",
	Short: "Space Battle - shoot down the falling enemies",
	Long: `Space Battle is a single-screen arcade shooter. Slide your ship along
the bottom of the playfield and shoot down enemies before they reach you.
Enemies fall faster, get tougher and come more often as your score grows.

Available commands:
  play     - Play in the terminal
  window   - Play in a native window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  spacebattle play
  spacebattle play --seed 42
  spacebattle window --scale 1.5
  spacebattle serve --ssh :2222
  spacebattle scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	spacebattle.SetConfigPath(flagConfig)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// runtimeConfig builds the runtime config for a session of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
