package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgalkin/skyhop/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 runs, ranked by levels won.

Examples:
  skyhop scores
  skyhop scores --db ./runs.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Sky Hop")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyhop play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Levels", "Deaths", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "------", "------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, entry.Levels, entry.Deaths, dateStr)
	}

	fmt.Println()
	if best, err := store.BestRun(); err == nil {
		fmt.Printf("Best: %d levels\n", best)
	}
}
