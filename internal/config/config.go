// Package config provides YAML-based game configuration loading and
// difficulty presets for the playroom platform.
package config

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Gravity  TetrisGravity  `yaml:"gravity"`
	Gameplay TetrisGameplay `yaml:"gameplay"`
}

// TetrisGravity defines the gravity speed curve in ticks per row.
type TetrisGravity struct {
	BaseTicks     int `yaml:"base_ticks"`
	TicksPerLevel int `yaml:"ticks_per_level"`
	MinTicks      int `yaml:"min_ticks"`
}

// TetrisGameplay defines gameplay toggles for the falling-block game.
type TetrisGameplay struct {
	GhostPiece  bool `yaml:"ghost_piece"`
	ShowNext    bool `yaml:"show_next"`
	AllowHold   bool `yaml:"allow_hold"`
	LinesPerLvl int  `yaml:"lines_per_level"`
}

// SudokuConfig contains all configuration for the Sudoku game.
type SudokuConfig struct {
	Holes SudokuHoles `yaml:"holes"`
	Lives int         `yaml:"lives"`
}

// SudokuHoles defines how many cells are removed per difficulty preset.
type SudokuHoles struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// WheelConfig contains all configuration for the lucky wheel.
type WheelConfig struct {
	Slices []WheelSlice `yaml:"slices"`
	Spin   WheelSpin    `yaml:"spin"`
}

// WheelSlice is one wheel sector with its label and point reward.
type WheelSlice struct {
	Label  string `yaml:"label"`
	Points int    `yaml:"points"`
}

// WheelSpin defines the spin physics of the lucky wheel.
type WheelSpin struct {
	MinVelocity   float64 `yaml:"min_velocity"`   // Degrees per tick at spin start
	MaxVelocity   float64 `yaml:"max_velocity"`   // Degrees per tick at spin start
	Friction      float64 `yaml:"friction"`       // Velocity multiplier per tick
	StopThreshold float64 `yaml:"stop_threshold"` // Velocity below which the wheel stops
	PointerOffset float64 `yaml:"pointer_offset"` // Degrees added before slice lookup
}
