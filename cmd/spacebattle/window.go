//go:build !nowindow

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open an 800x600 window and play with real held keys.

Controls:
  A/Left       - Move left
  D/Right      - Move right
  Space/Z      - Fire
  R            - Restart (after game over)
  Q/Esc        - Quit (closing the window works too)

Examples:
  spacebattle window
  spacebattle window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size multiplier")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger(cfg.Log)
	defer closeLog()

	store := openStore(cfg.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	game := spacebattle.New()
	game.SetHook(eventHook(cfg.Achievement, logger, openURL))

	return window.Run(game, runtimeConfig(spacebattle.PlayfieldW, spacebattle.PlayfieldH), window.Options{
		Store:  store,
		Player: localPlayer(),
		Logger: logger,
		Scale:  flagScale,
	})
}
