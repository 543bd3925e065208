package game2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Score   int
	Moves   int
	Grid    Grid
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.won && !g.keepPlaying:
		state = StateWon
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Moves:   g.moves,
		Grid:    g.grid,
		MaxTile: g.grid.MaxTile(),
		State:   state,
	}
}
