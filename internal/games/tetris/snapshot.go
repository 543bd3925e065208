package tetris

// GameStateType describes the high-level phase of the game.
type GameStateType string

const (
	StatePlaying        GameStateType = "playing"
	StateGameOver       GameStateType = "game_over"
	StatePausedSmallWin GameStateType = "paused_small_window"
)

// Snapshot captures the full deterministic state of a game for testing.
type Snapshot struct {
	Tick     uint64                     `json:"tick"`
	Score    int                        `json:"score"`
	Lines    int                        `json:"lines"`
	Level    int                        `json:"level"`
	Current  string                     `json:"current"`
	Next     string                     `json:"next"`
	Hold     string                     `json:"hold,omitempty"`
	PieceX   int                        `json:"piece_x"`
	PieceY   int                        `json:"piece_y"`
	Rotation int                        `json:"rotation"`
	Well     [WellHeight][WellWidth]int `json:"well"`
	State    GameStateType              `json:"state"`
}

// Snapshot returns the current deterministic state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmallWin
	case g.gameOver:
		state = StateGameOver
	}

	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		Current:  g.current.String(),
		Next:     g.next.String(),
		PieceX:   g.pieceX,
		PieceY:   g.pieceY,
		Rotation: g.rotation,
		Well:     g.well,
		State:    state,
	}
	if g.hasHold {
		snap.Hold = g.hold.String()
	}
	return snap
}
