package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leminhai2007/term-playroom/internal/core"
	"github.com/leminhai2007/term-playroom/internal/games/sudoku"
	"github.com/leminhai2007/term-playroom/internal/games/tetris"
	"github.com/leminhai2007/term-playroom/internal/games/wheel"
	"github.com/leminhai2007/term-playroom/internal/platform/tui"
	"github.com/leminhai2007/term-playroom/internal/registry"
	"github.com/leminhai2007/term-playroom/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the playroom with a game picker menu",
	Long: `Start the playroom in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  playroom menu
  playroom menu --fps 30
  playroom menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := termSize()

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Calculator is a menu entry but not a registry game
		if gameID == tui.CalculatorID {
			if calcErr := tui.RunCalculator(cfg.ScreenW, cfg.ScreenH); calcErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", calcErr)
			}
			continue
		}

		// Set config path and difficulty for games before creation
		switch gameID {
		case "tetris":
			tetris.SetConfigPath(flagConfig)

		case "wheel":
			wheel.SetConfigPath(flagConfig)

		case "sudoku":
			sudoku.SetConfigPath(flagConfig)

			// Show difficulty selector
			preset, selErr := tui.RunSudokuDifficultySelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}

			// User pressed back or quit
			if preset == nil {
				continue
			}
			sudoku.SetDifficulty(*preset)
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
