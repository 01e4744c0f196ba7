package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/platform/tui"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  A/Left       - Move left
  D/Right      - Move right
  Space/Z      - Fire
  R            - Restart (after game over)
  Q/Esc        - Quit
  Ctrl+S       - Save a screenshot

Terminals only report key presses, so a press keeps its action held for
a few ticks (input.hold_ticks in the config). Holding a key down works
through the terminal's key repeat.

Examples:
  spacebattle play
  spacebattle play --seed 42
  spacebattle play --config ./my-spacebattle.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger(cfg.Log)
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(cfg.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	game := spacebattle.New()
	game.SetHook(eventHook(cfg.Achievement, logger, openURL))

	screenshotDir, err := config.ExpandHome(filepath.Join("~", ".spacebattle", "screenshots"))
	if err != nil {
		screenshotDir = ""
	}

	return tui.Run(game, runtimeConfig(width, height), tui.Options{
		Store:         store,
		Player:        localPlayer(),
		HoldTicks:     cfg.Input.HoldTicks,
		ScreenshotDir: screenshotDir,
		Logger:        logger,
	})
}

// openStore opens the score database. Scores are optional, so a failure
// only produces a warning and a nil store.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("scores disabled", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
		return nil
	}
	return store
}

// localPlayer returns the OS user name recorded with local scores.
func localPlayer() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
