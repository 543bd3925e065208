// playroom is a TUI collection of casual games played in the terminal.
//
// Usage:
//
//	playroom list              - List available games
//	playroom play <game>       - Play a game
//	playroom menu              - Start menu to pick games interactively
//	playroom calc              - Open the calculator
//	playroom serve             - Start SSH server for remote play
//	playroom scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.playroom/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/leminhai2007/term-playroom/internal/games/game2048"
	_ "github.com/leminhai2007/term-playroom/internal/games/sudoku"
	_ "github.com/leminhai2007/term-playroom/internal/games/tetris"
	_ "github.com/leminhai2007/term-playroom/internal/games/wheel"
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
	Use:   "playroom",
	Short: "Term Playroom - Casual games in your terminal",
	Long: `Term Playroom is a terminal-based collection of casual games:
2048, Tetris, Sudoku, a lucky wheel and a calculator.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  calc     - Expression calculator
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  playroom list
  playroom play 2048
  playroom play sudoku --difficulty hard
  playroom menu
  playroom serve --ssh :2222
  playroom scores tetris`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.playroom/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
