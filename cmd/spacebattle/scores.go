package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/platform/tui"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

var (
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  spacebattle scores
  spacebattle scores --player alice
  spacebattle scores --clear
  spacebattle scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show scores of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(spacebattle.GameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	var entries []storage.ScoreEntry
	if flagPlayer != "" {
		entries, err = store.PlayerScores(spacebattle.GameID, flagPlayer, storage.DefaultLimit)
	} else {
		entries, err = store.TopScores(spacebattle.GameID, storage.DefaultLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	stats, err := store.GetGameStats(spacebattle.GameID)
	if err != nil {
		stats = nil
	}

	fmt.Print(tui.RenderScoreboard(spacebattle.New().Title(), entries, stats))
	return nil
}
