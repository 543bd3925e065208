package sudoku

import (
	"math/rand"

	"github.com/leminhai2007/term-playroom/internal/config"
	"github.com/leminhai2007/term-playroom/internal/core"
	"github.com/leminhai2007/term-playroom/internal/registry"
)

// Game implements the Sudoku game.
type Game struct {
	cfg  config.SudokuConfig
	rng  *rand.Rand
	tick uint64

	board    Board
	solution Board
	given    [BoardSize][BoardSize]bool
	notes    [BoardSize][BoardSize]uint16 // Bitmask, bit n-1 = pencil mark n

	cursorX  int
	cursorY  int
	noteMode bool

	lives    int
	mistakes int
	placed   int // Correct placements this session, drives the score

	screenW int
	screenH int

	won      bool
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level settings applied to the next created game, set by the CLI
// or the menu before Reset runs.
var (
	configPath string
	difficulty = config.DifficultyEasy
)

// SetConfigPath sets the config file path for the next created game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the difficulty preset for the next created game.
func SetDifficulty(preset config.DifficultyPreset) {
	difficulty = preset
}

// New creates a new Sudoku game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("sudoku", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "sudoku"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sudoku"
}

// Reset initializes/restarts the game with a freshly generated puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSudoku(configPath)
	if err != nil {
		loaded = config.DefaultSudokuConfig()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.board, g.solution = Generate(g.rng, g.cfg.HolesForPreset(difficulty))
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			g.given[y][x] = g.board[y][x] != 0
			g.notes[y][x] = 0
		}
	}

	g.cursorX = 0
	g.cursorY = 0
	g.noteMode = false
	g.lives = g.cfg.Lives
	g.mistakes = 0
	g.placed = 0
	g.won = false
	g.gameOver = false
	g.paused = false

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := BoardSize*4 + 20 // Board plus side panel
	minH := BoardSize*2 + 3
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
	if g.paused || g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	case in.Has(core.ActionNote):
		g.noteMode = !g.noteMode
	case in.Has(core.ActionErase):
		g.erase()
	case in.Digit != 0:
		g.enterDigit(in.Digit)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor moves the selection, clamped to the board.
func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = core.Clamp(g.cursorX+dx, 0, BoardSize-1)
	g.cursorY = core.Clamp(g.cursorY+dy, 0, BoardSize-1)
}

// enterDigit places a digit or toggles a pencil note at the cursor.
func (g *Game) enterDigit(d int) {
	x, y := g.cursorX, g.cursorY
	if g.given[y][x] {
		return
	}

	if g.noteMode {
		if g.board[y][x] == 0 {
			g.notes[y][x] ^= 1 << (d - 1)
		}
		return
	}

	if g.board[y][x] == d {
		return
	}
	g.board[y][x] = d
	g.notes[y][x] = 0

	if d != g.solution[y][x] {
		g.mistakes++
		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
		}
		return
	}

	g.placed++
	g.clearNotesFor(x, y, d)
	if g.board == g.solution {
		g.won = true
	}
}

// erase clears the digit and notes at the cursor if it is not a given.
func (g *Game) erase() {
	x, y := g.cursorX, g.cursorY
	if g.given[y][x] {
		return
	}
	if g.board[y][x] != 0 && g.board[y][x] == g.solution[y][x] {
		g.placed--
	}
	g.board[y][x] = 0
	g.notes[y][x] = 0
}

// clearNotesFor removes pencil marks for d from the row, column, and box
// of a freshly placed correct digit.
func (g *Game) clearNotesFor(x, y, d int) {
	mask := ^(uint16(1) << (d - 1))
	for i := 0; i < BoardSize; i++ {
		g.notes[y][i] &= mask
		g.notes[i][x] &= mask
	}
	boxY := y - y%BoxSize
	boxX := x - x%BoxSize
	for i := 0; i < BoxSize; i++ {
		for j := 0; j < BoxSize; j++ {
			g.notes[boxY+i][boxX+j] &= mask
		}
	}
}

// hasConflict reports whether the digit at (x, y) collides with the same
// digit elsewhere in its row, column, or box.
func (g *Game) hasConflict(x, y int) bool {
	d := g.board[y][x]
	if d == 0 {
		return false
	}
	for i := 0; i < BoardSize; i++ {
		if i != x && g.board[y][i] == d {
			return true
		}
		if i != y && g.board[i][x] == d {
			return true
		}
	}
	boxY := y - y%BoxSize
	boxX := x - x%BoxSize
	for i := 0; i < BoxSize; i++ {
		for j := 0; j < BoxSize; j++ {
			cy, cx := boxY+i, boxX+j
			if (cy != y || cx != x) && g.board[cy][cx] == d {
				return true
			}
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.placed * 10,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall,
	}
}
