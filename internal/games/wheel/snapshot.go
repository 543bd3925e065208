package wheel

// GameStateType describes the high-level phase of the game.
type GameStateType string

const (
	StateIdle           GameStateType = "idle"
	StateSpinning       GameStateType = "spinning"
	StatePausedSmallWin GameStateType = "paused_small_window"
)

// Snapshot captures the full deterministic state of a game for testing.
type Snapshot struct {
	Tick      uint64        `json:"tick"`
	Angle     float64       `json:"angle"`
	Velocity  float64       `json:"velocity"`
	LastIndex int           `json:"last_index"`
	Spins     int           `json:"spins"`
	Score     int           `json:"score"`
	State     GameStateType `json:"state"`
}

// Snapshot returns the current deterministic state.
func (g *Game) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case g.tooSmall:
		state = StatePausedSmallWin
	case g.spinning:
		state = StateSpinning
	}

	return Snapshot{
		Tick:      g.tick,
		Angle:     g.angle,
		Velocity:  g.velocity,
		LastIndex: g.lastIndex,
		Spins:     g.spins,
		Score:     g.score,
		State:     state,
	}
}
