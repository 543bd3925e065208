package sudoku

// GameStateType describes the high-level phase of the game.
type GameStateType string

const (
	StatePlaying        GameStateType = "playing"
	StateWon            GameStateType = "won"
	StateGameOver       GameStateType = "game_over"
	StatePausedSmallWin GameStateType = "paused_small_window"
)

// Snapshot captures the full deterministic state of a game for testing.
type Snapshot struct {
	Tick     uint64        `json:"tick"`
	Board    Board         `json:"board"`
	Lives    int           `json:"lives"`
	Mistakes int           `json:"mistakes"`
	Placed   int           `json:"placed"`
	CursorX  int           `json:"cursor_x"`
	CursorY  int           `json:"cursor_y"`
	NoteMode bool          `json:"note_mode"`
	State    GameStateType `json:"state"`
}

// Snapshot returns the current deterministic state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmallWin
	case g.won:
		state = StateWon
	case g.gameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:     g.tick,
		Board:    g.board,
		Lives:    g.lives,
		Mistakes: g.mistakes,
		Placed:   g.placed,
		CursorX:  g.cursorX,
		CursorY:  g.cursorY,
		NoteMode: g.noteMode,
		State:    state,
	}
}
