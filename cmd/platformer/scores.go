package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLimit int
	flagClearScores bool
	flagAllScores   bool
	flagSummary     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode (campaign by default).

Examples:
  platformer scores
  platformer scores platformer_endless --limit 25
  platformer scores --all
  platformer scores --summary
  platformer scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded run and the best score")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded run instead of the top --limit")
	scoresCmd.Flags().BoolVar(&flagSummary, "summary", false, "Show totals for every mode that has been played")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagSummary {
		return runSummary()
	}

	gameID := "platformer"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'platformer list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	heading := "High Scores"
	if flagAllScores {
		heading = "All Runs"
	}
	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "#", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(gameID); err == nil && best > 0 {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Best level: %d  Average: %.0f\n", stats.GamesCount, stats.BestLevel, stats.AvgScore)
	}
	return nil
}

// runSummary prints one line per mode with recorded runs.
func runSummary() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-20s  %-5s  %-10s  %-5s  %-8s  %s\n", "Mode", "Runs", "Best", "Level", "Average", "Last played")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-20s  %-5d  %-10d  %-5d  %-8.0f  %s\n",
			id, st.GamesCount, st.HighScore, st.BestLevel, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
