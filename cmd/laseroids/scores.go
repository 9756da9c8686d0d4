package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/laseroids/internal/platform/tui"
	"github.com/vovakirdan/laseroids/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

Examples:
  laseroids scores
  laseroids scores --limit 20
  laseroids scores --limit 0
  laseroids scores --tui
  laseroids scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := loadRuns(store, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("High Scores - Laseroids")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'laseroids play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-8s  %s\n", "Rank", "Score", "Asteroids", "Aliens", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-8s  %s\n", "----", "-----", "---------", "------", "-----", "----")

	// Print runs
	for i, r := range runs {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-9d  %-6d  %-8s  %s\n",
			i+1, r.Score, r.AsteroidsDestroyed, r.AliensDestroyed, level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show summary
	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d", best)
	}
	if sum, err := store.Summary(); err == nil {
		fmt.Printf("  Runs: %d  Average: %.1f", sum.RunsCount, sum.AvgScore)
	}
	fmt.Println()
}

// loadRuns returns the best limit runs, or every run, best first, when limit
// is not positive.
func loadRuns(store *storage.Store, limit int) ([]storage.Run, error) {
	if limit <= 0 {
		return store.AllRuns()
	}
	return store.TopRuns(limit)
}
