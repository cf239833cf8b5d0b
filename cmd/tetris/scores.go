package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit int
	flagRunID string
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, optionally for one difficulty.

Examples:
  tetris scores
  tetris scores --difficulty hard
  tetris scores --limit 25
  tetris scores --run 5b0e...   # Show one run
  tetris scores --clear         # Delete every recorded run`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(tetris.GameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All runs deleted.")
		return nil
	case flagRunID != "":
		return printRun(store, flagRunID)
	}

	var runs []storage.Run
	if preset == "" {
		runs, err = store.TopRuns(tetris.GameID, flagLimit)
	} else {
		runs, err = store.TopRunsByPreset(tetris.GameID, string(preset), flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "High Scores - Tetris"
	if preset != "" {
		title += fmt.Sprintf(" (%s)", preset)
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-5s  %-8s  %s\n", "Rank", "Score", "Lines", "Level", "Mode", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-5s  %-8s  %s\n", "----", "-----", "-----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-5d  %-5s  %-8s  %s\n",
			i+1, r.Score, r.Lines, r.Level, r.Preset,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if preset == "" {
		stats, err := store.GetGameStats(tetris.GameID)
		if err == nil {
			fmt.Printf("Games: %d  Best: %d  Avg: %.0f  Lines: %d\n",
				stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
		}
		return nil
	}
	if best, err := store.HighScore(tetris.GameID); err == nil {
		fmt.Printf("Best overall: %d\n", best)
	}
	return nil
}

func printRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return fmt.Errorf("retrieving run: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", runID)
	}

	fmt.Printf("Run %s\n\n", r.RunID)
	fmt.Printf("  Difficulty  %s\n", r.Preset)
	fmt.Printf("  Score       %d\n", r.Score)
	fmt.Printf("  Lines       %d\n", r.Lines)
	fmt.Printf("  Level       %d\n", r.Level)
	fmt.Printf("  Pieces      %d\n", r.Pieces)
	fmt.Printf("  Time        %s\n", r.Duration.Round(time.Second))
	fmt.Printf("  Played      %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
