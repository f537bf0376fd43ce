// cookieshift is a terminal slide-and-match puzzle.
//
// Usage:
//
//	cookieshift play          - Play in the current terminal
//	cookieshift menu          - Start with the session menu
//	cookieshift serve         - Start SSH server for remote play
//	cookieshift scores        - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.cookieshift/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-cookieshift/internal/games/cookieshift"
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
	Use:   "cookieshift",
	Short: "Cookie Shift - a slide-and-match puzzle in your terminal",
	Long: `Cookie Shift is a terminal puzzle game. Rotate rows and columns of a
5x5 cookie board to line up five matching pieces; cleared lines add to
your score and the board stays full, so the chase never ends.

Available commands:
  play     - Play in the current terminal
  menu     - Interactive session menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  cookieshift play
  cookieshift play --seed 42
  cookieshift serve --ssh :2222
  cookieshift scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cookieshift/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
