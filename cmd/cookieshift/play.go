package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cookieshift/internal/core"
	"github.com/vovakirdan/tui-cookieshift/internal/games/cookieshift"
	"github.com/vovakirdan/tui-cookieshift/internal/platform/tui"
	"github.com/vovakirdan/tui-cookieshift/internal/registry"
	"github.com/vovakirdan/tui-cookieshift/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Cookie Shift",
	Long: `Start a game session in the current terminal.

Controls:
  E/D/S/F or arrows  - Move the cursor (wraps at the edges)
  Shift + move key   - Slide the cursor's row or column
  Space              - Reset the board (score is kept)
  P                  - Pause
  R                  - Restart with a fresh seed
  Q/Ctrl+C           - Quit

Examples:
  cookieshift play
  cookieshift play --seed 42
  cookieshift play --config ./my-pieces.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation
	cookieshift.SetConfigPath(flagConfig)

	game, err := registry.Create("cookieshift")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
