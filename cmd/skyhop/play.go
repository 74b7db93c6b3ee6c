package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pgalkin/skyhop/internal/config"
	"github.com/pgalkin/skyhop/internal/core"
	"github.com/pgalkin/skyhop/internal/game"
	"github.com/pgalkin/skyhop/internal/platform/tui"
	"github.com/pgalkin/skyhop/internal/storage"
)

var (
	flagConfig string
	flagWorld  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  W/Up/Space - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Tab        - Best runs (after game over)
  Q/Ctrl+C   - Quit

Examples:
  skyhop play
  skyhop play --seed 42
  skyhop play --world 1500x700
  skyhop play --config ./my-skyhop.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagWorld, "world", "", "World size override, WIDTHxHEIGHT in world units")
}

func runPlay(cmd *cobra.Command, args []string) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	worldW, worldH := conf.World.Width, conf.World.Height
	if flagWorld != "" {
		var w, h float64
		if _, parseErr := fmt.Sscanf(flagWorld, "%fx%f", &w, &h); parseErr != nil || w <= 0 || h <= 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid --world %q, want WIDTHxHEIGHT\n", flagWorld)
			os.Exit(1)
		}
		worldW, worldH = w, h
	}

	cfg := core.RuntimeConfig{
		WorldW:   worldW,
		WorldH:   worldH,
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(conf)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg, conf.Input.HoldTicks)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
