package game2048

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/leminhai2007/term-playroom/internal/core"
	"github.com/leminhai2007/term-playroom/internal/registry"
)

// WinTile is the tile value that flips the win flag. Play may continue
// past it.
const WinTile = 2048

// Game wraps the pure board engine with session state: cumulative score,
// win and game-over flags, and the move gate. The engine itself never sees
// any of this.
type Game struct {
	rng  *rand.Rand
	tick uint64

	grid  Grid
	score int
	moves int

	won         bool // WinTile reached at least once
	keepPlaying bool // Player chose to continue after winning
	gameOver    bool
	paused      bool
	tooSmall    bool

	screenW int
	screenH int
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.won = false
	g.keepPlaying = false
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.grid = NewGrid(g.rng)

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (21 wide, 9 tall) + HUD
	minW := 25
	minH := 13
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Win overlay: wait for the player to continue or restart
	if g.won && !g.keepPlaying {
		if in.Has(core.ActionConfirm) {
			g.keepPlaying = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.processMove(DirLeft)
	case in.Has(core.ActionRight):
		g.processMove(DirRight)
	case in.Has(core.ActionUp):
		g.processMove(DirUp)
	case in.Has(core.ActionDown):
		g.processMove(DirDown)
	}

	return core.StepResult{State: g.State()}
}

// processMove runs one move through the engine and folds the result into
// the session: score, spawn, win and terminal checks.
func (g *Game) processMove(dir Direction) {
	next, changed, delta := g.grid.Move(dir)
	if !changed {
		// Nothing moved or merged: no spawn, no state change
		return
	}

	g.grid = next
	g.score += delta
	g.moves++

	if !g.won && g.grid.MaxTile() >= WinTile {
		g.won = true
	}

	// A changed move always leaves at least one empty cell, so the spawn
	// precondition holds here.
	spawned, err := g.grid.Spawn(g.rng)
	if err != nil {
		g.gameOver = true
		return
	}
	g.grid = spawned

	// Terminal check runs after the spawn: the new tile can lock the board
	if g.grid.IsTerminal() {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall || (g.won && !g.keepPlaying),
	}
}

// savedSession is the persisted form of an in-progress game.
type savedSession struct {
	Grid        Grid `json:"grid"`
	Score       int  `json:"score"`
	Moves       int  `json:"moves"`
	Won         bool `json:"won"`
	KeepPlaying bool `json:"keep_playing"`
}

// SaveState serializes the in-progress session for later resumption.
// Finished or untouched games report nothing to save.
func (g *Game) SaveState() ([]byte, bool) {
	if g.gameOver || g.moves == 0 {
		return nil, false
	}
	data, err := json.Marshal(savedSession{
		Grid:        g.grid,
		Score:       g.score,
		Moves:       g.moves,
		Won:         g.won,
		KeepPlaying: g.keepPlaying,
	})
	if err != nil {
		return nil, false
	}
	return data, true
}

// RestoreState loads a previously saved session. Must run after Reset.
func (g *Game) RestoreState(data []byte) error {
	var s savedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("game2048: corrupt saved session: %w", err)
	}

	g.grid = s.Grid
	g.score = s.Score
	g.moves = s.Moves
	g.won = s.Won
	g.keepPlaying = s.KeepPlaying
	g.gameOver = g.grid.IsTerminal()
	return nil
}

// Interface checks
var (
	_ registry.Game  = (*Game)(nil)
	_ registry.Saver = (*Game)(nil)
)
