package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a user-supplied string to a preset, defaulting to easy.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// HolesForPreset returns the number of cells removed from a full Sudoku
// board for a difficulty preset.
func (c SudokuConfig) HolesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyMedium:
		return c.Holes.Medium
	case DifficultyHard:
		return c.Holes.Hard
	default:
		return c.Holes.Easy
	}
}
