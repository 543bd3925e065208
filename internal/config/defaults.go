package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/sudoku.yaml
var defaultSudokuYAML []byte

//go:embed defaults/wheel.yaml
var defaultWheelYAML []byte

// DefaultTetrisConfig returns the default falling-block game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: TetrisGravity{
			BaseTicks:     48,
			TicksPerLevel: 4,
			MinTicks:      4,
		},
		Gameplay: TetrisGameplay{
			GhostPiece:  true,
			ShowNext:    true,
			AllowHold:   true,
			LinesPerLvl: 10,
		},
	}
}

// DefaultSudokuConfig returns the default Sudoku configuration.
func DefaultSudokuConfig() SudokuConfig {
	return SudokuConfig{
		Holes: SudokuHoles{
			Easy:   30,
			Medium: 40,
			Hard:   50,
		},
		Lives: 3,
	}
}

// DefaultWheelConfig returns the default lucky wheel configuration.
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		Slices: []WheelSlice{
			{Label: "Free Play", Points: 5},
			{Label: "10 Points", Points: 10},
			{Label: "Try Again", Points: 0},
			{Label: "50 Points", Points: 50},
			{Label: "Lose a Turn", Points: 0},
			{Label: "100 Points", Points: 100},
			{Label: "Mystery", Points: 25},
			{Label: "Jackpot", Points: 500},
		},
		Spin: WheelSpin{
			MinVelocity:   18.0,
			MaxVelocity:   36.0,
			Friction:      0.985,
			StopThreshold: 0.1,
			PointerOffset: 0.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	case "sudoku":
		return defaultSudokuYAML
	case "wheel":
		return defaultWheelYAML
	default:
		return nil
	}
}
