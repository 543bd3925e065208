// Package wheel implements the lucky wheel: an impulse spin with friction
// decay that lands on one of the configured prize slices.
package wheel

import (
	"math"
	"math/rand"

	"github.com/leminhai2007/term-playroom/internal/config"
	"github.com/leminhai2007/term-playroom/internal/core"
	"github.com/leminhai2007/term-playroom/internal/registry"
)

// Game implements the lucky wheel.
type Game struct {
	cfg  config.WheelConfig
	rng  *rand.Rand
	tick uint64

	angle    float64 // Wheel rotation in degrees, [0, 360)
	velocity float64 // Degrees per tick while spinning
	spinning bool

	lastIndex int // Slice from the previous spin, -1 before the first
	spins     int
	score     int

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the config file path for the next created game.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new lucky wheel game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("wheel", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "wheel"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lucky Wheel"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadWheel(configPath)
	if err != nil || len(loaded.Slices) == 0 {
		loaded = config.DefaultWheelConfig()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.angle = 0
	g.velocity = 0
	g.spinning = false
	g.lastIndex = -1
	g.spins = 0
	g.score = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := 40
	minH := len(g.cfg.Slices) + 8
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

	if in.Has(core.ActionConfirm) && !g.spinning {
		g.spin()
	}

	if g.spinning {
		g.angle = math.Mod(g.angle+g.velocity, 360)
		g.velocity *= g.cfg.Spin.Friction
		if g.velocity < g.cfg.Spin.StopThreshold {
			g.stop()
		}
	}

	return core.StepResult{State: g.State()}
}

// spin kicks the wheel with a random impulse in the configured range.
func (g *Game) spin() {
	span := g.cfg.Spin.MaxVelocity - g.cfg.Spin.MinVelocity
	g.velocity = g.cfg.Spin.MinVelocity + g.rng.Float64()*span
	g.spinning = true
}

// stop settles the wheel and awards the slice under the pointer.
func (g *Game) stop() {
	g.spinning = false
	g.velocity = 0
	g.lastIndex = g.pointerIndex()
	g.spins++
	g.score += g.cfg.Slices[g.lastIndex].Points
}

// pointerIndex maps the current wheel angle to the slice under the fixed
// pointer. The wheel turns clockwise, so the pointer sweeps the slices in
// reverse angular order.
func (g *Game) pointerIndex() int {
	n := len(g.cfg.Slices)
	sliceAngle := 360.0 / float64(n)
	swept := math.Mod(360-math.Mod(g.angle, 360), 360)
	return int(math.Floor((swept+g.cfg.Spin.PointerOffset)/sliceAngle)) % n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: false,
		Paused:   g.paused || g.tooSmall,
	}
}
