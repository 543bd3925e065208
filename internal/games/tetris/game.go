package tetris

import (
	"math/rand"

	"github.com/leminhai2007/term-playroom/internal/config"
	"github.com/leminhai2007/term-playroom/internal/core"
	"github.com/leminhai2007/term-playroom/internal/registry"
)

// lineScores is the base score per number of lines cleared at once.
var lineScores = [5]int{0, 100, 300, 500, 800}

// Game implements the falling-block game.
type Game struct {
	cfg  config.TetrisConfig
	rng  *rand.Rand
	tick uint64

	// Well contents: 0 empty, otherwise PieceKind+1
	well [WellHeight][WellWidth]int

	// Current piece
	current  PieceKind
	next     PieceKind
	hold     PieceKind
	hasHold  bool
	canHold  bool
	pieceX   int
	pieceY   int
	rotation int
	bag      []PieceKind

	// Gravity
	fallTicker int

	score int
	lines int
	level int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the config file path for the next created game.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadTetris(configPath)
	if err != nil {
		loaded = config.DefaultTetrisConfig()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.level = 0
	g.gameOver = false
	g.paused = false
	g.hasHold = false
	g.canHold = true
	g.fallTicker = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.well = [WellHeight][WellWidth]int{}
	g.bag = nil

	g.current = g.drawFromBag()
	g.next = g.drawFromBag()
	g.resetPiece()

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := WellWidth*2 + 20 // Well plus side panel
	minH := WellHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// fallInterval returns the current gravity period in ticks.
func (g *Game) fallInterval() int {
	interval := g.cfg.Gravity.BaseTicks - g.level*g.cfg.Gravity.TicksPerLevel
	if interval < g.cfg.Gravity.MinTicks {
		return g.cfg.Gravity.MinTicks
	}
	return interval
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
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.shift(-1)
	case in.Has(core.ActionRight):
		g.shift(1)
	case in.Has(core.ActionUp):
		g.rotate()
	case in.Has(core.ActionDown):
		g.softDrop()
	case in.Has(core.ActionConfirm):
		g.hardDrop()
	case in.Has(core.ActionHold):
		g.holdPiece()
	}

	// Gravity
	if !g.gameOver {
		g.fallTicker++
		if g.fallTicker >= g.fallInterval() {
			g.fallTicker = 0
			g.fall()
		}
	}

	return core.StepResult{State: g.State()}
}

// shift moves the current piece horizontally if the target cells are free.
func (g *Game) shift(dx int) {
	if !g.collides(g.pieceX+dx, g.pieceY, g.rotation) {
		g.pieceX += dx
	}
}

// rotate turns the piece clockwise, trying wall kicks when blocked.
func (g *Game) rotate() {
	newRot := (g.rotation + 1) % 4
	if !g.collides(g.pieceX, g.pieceY, newRot) {
		g.rotation = newRot
		return
	}
	for _, dx := range wallKicks {
		if !g.collides(g.pieceX+dx, g.pieceY, newRot) {
			g.pieceX += dx
			g.rotation = newRot
			return
		}
	}
}

// softDrop moves the piece down one row for a small bonus.
func (g *Game) softDrop() {
	if !g.collides(g.pieceX, g.pieceY+1, g.rotation) {
		g.pieceY++
		g.score++
		g.fallTicker = 0
	}
}

// hardDrop slams the piece to the floor and locks it immediately.
func (g *Game) hardDrop() {
	distance := 0
	for !g.collides(g.pieceX, g.pieceY+1, g.rotation) {
		g.pieceY++
		distance++
	}
	g.score += distance * 2
	g.lockAndSpawn()
}

// holdPiece swaps the current piece into the hold slot, once per drop.
func (g *Game) holdPiece() {
	if !g.cfg.Gameplay.AllowHold || !g.canHold {
		return
	}
	if !g.hasHold {
		g.hold = g.current
		g.hasHold = true
		g.current = g.next
		g.next = g.drawFromBag()
	} else {
		g.hold, g.current = g.current, g.hold
	}
	g.resetPiece()
	g.canHold = false
}

// fall applies one gravity step; a blocked fall locks the piece.
func (g *Game) fall() {
	if !g.collides(g.pieceX, g.pieceY+1, g.rotation) {
		g.pieceY++
		return
	}
	g.lockAndSpawn()
}

// lockAndSpawn writes the piece into the well, clears lines, scores them,
// and spawns the next piece.
func (g *Game) lockAndSpawn() {
	for _, c := range cells(g.current, g.rotation) {
		x := g.pieceX + c.X
		y := g.pieceY + c.Y
		if x >= 0 && x < WellWidth && y >= 0 && y < WellHeight {
			g.well[y][x] = int(g.current) + 1
		}
	}

	cleared := g.clearLines()
	if cleared > 0 {
		g.score += lineScores[cleared] * (g.level + 1)
		g.lines += cleared
		perLevel := g.cfg.Gameplay.LinesPerLvl
		if perLevel <= 0 {
			perLevel = 10
		}
		g.level = g.lines / perLevel
	}

	g.current = g.next
	g.next = g.drawFromBag()
	g.resetPiece()
}

// resetPiece places the current piece at the spawn position.
// A blocked spawn ends the game.
func (g *Game) resetPiece() {
	g.pieceX = 3
	g.pieceY = 0
	g.rotation = 0
	g.canHold = true
	g.fallTicker = 0
	if g.collides(g.pieceX, g.pieceY, g.rotation) {
		g.gameOver = true
	}
}

// clearLines removes all full rows, pulling everything above down.
// Returns the number of rows cleared.
func (g *Game) clearLines() int {
	cleared := 0
	for y := WellHeight - 1; y >= 0; y-- {
		full := true
		for x := 0; x < WellWidth; x++ {
			if g.well[y][x] == 0 {
				full = false
				break
			}
		}
		if !full {
			continue
		}

		cleared++
		for pull := y; pull > 0; pull-- {
			g.well[pull] = g.well[pull-1]
		}
		g.well[0] = [WellWidth]int{}
		y++ // Re-check the same row after the pull
	}
	return cleared
}

// collides reports whether the piece at (x, y, rotation) would leave the
// well or overlap settled blocks.
func (g *Game) collides(x, y, rotation int) bool {
	for _, c := range cells(g.current, rotation) {
		bx := x + c.X
		by := y + c.Y
		if bx < 0 || bx >= WellWidth || by < 0 || by >= WellHeight {
			return true
		}
		if g.well[by][bx] != 0 {
			return true
		}
	}
	return false
}

// drawFromBag pops the next piece from a 7-bag, refilling when empty.
func (g *Game) drawFromBag() PieceKind {
	if len(g.bag) == 0 {
		bag := make([]PieceKind, pieceCount)
		for i := range bag {
			bag[i] = PieceKind(i)
		}
		g.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		g.bag = bag
	}
	kind := g.bag[0]
	g.bag = g.bag[1:]
	return kind
}

// ghostY returns the row the current piece would land on if hard-dropped.
func (g *Game) ghostY() int {
	y := g.pieceY
	for !g.collides(g.pieceX, y+1, g.rotation) {
		y++
	}
	return y
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
