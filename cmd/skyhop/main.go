// skyhop is a terminal platformer: hop from platform to platform, dodge the
// spikes, and reach the goal marker to advance to the next generated level.
//
// Usage:
//
//	skyhop play              - Play in the current terminal
//	skyhop scores            - Show best runs
//	skyhop serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.skyhop/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Sky Hop - A platformer in your terminal",
	Long: `Sky Hop is a terminal platformer with procedurally generated levels.

Move with A/D or the arrow keys, jump with W, Up or Space, and touch the
goal marker to advance. Spikes cost a life; ten deaths end the run.

Available commands:
  play     - Play in the current terminal
  scores   - Show best runs
  serve    - Start SSH server for remote play

Examples:
  skyhop play
  skyhop play --seed 42
  skyhop serve --ssh :2222
  skyhop scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
