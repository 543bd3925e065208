package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leminhai2007/term-playroom/internal/config"
	"github.com/leminhai2007/term-playroom/internal/core"
	"github.com/leminhai2007/term-playroom/internal/games/sudoku"
	"github.com/leminhai2007/term-playroom/internal/games/tetris"
	"github.com/leminhai2007/term-playroom/internal/games/wheel"
	"github.com/leminhai2007/term-playroom/internal/platform/tui"
	"github.com/leminhai2007/term-playroom/internal/registry"
	"github.com/leminhai2007/term-playroom/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move
  P           - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Sudoku difficulty options:
  easy   - 30 holes
  medium - 40 holes
  hard   - 50 holes

Examples:
  playroom play 2048
  playroom play tetris
  playroom play sudoku --difficulty hard
  playroom play wheel --config ./my-wheel.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Sudoku difficulty preset: easy, medium, hard")
}

// termSize returns the current terminal size, with sane defaults.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'playroom list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for selectors
	width, height := termSize()

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "tetris":
		tetris.SetConfigPath(flagConfig)

	case "wheel":
		wheel.SetConfigPath(flagConfig)

	case "sudoku":
		sudoku.SetConfigPath(flagConfig)

		if flagDifficulty != "" {
			sudoku.SetDifficulty(config.ParsePreset(flagDifficulty))
		} else {
			// Show difficulty selector
			preset, selErr := tui.RunSudokuDifficultySelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}

			// User pressed back or quit
			if preset == nil {
				return
			}
			sudoku.SetDifficulty(*preset)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
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

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
