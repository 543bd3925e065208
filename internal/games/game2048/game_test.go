package game2048

import (
	"testing"

	"github.com/leminhai2007/term-playroom/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestDeterministicStart(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	if g1.grid != g2.grid {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v", g1.grid, g2.grid)
	}
}

func TestMoveSpawnsExactlyOneTile(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.grid = Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	tiles := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.grid[y][x] != 0 {
				tiles++
			}
		}
	}

	// Merge left leaves one tile, then exactly one spawn
	if tiles != 2 {
		t.Errorf("after merge+spawn expected 2 tiles, got %d (grid %v)", tiles, g.grid)
	}
	if g.grid[0][0] != 4 {
		t.Errorf("merged tile should be 4 at top-left, grid %v", g.grid)
	}
	if g.score != 4 {
		t.Errorf("score = %d, want 4", g.score)
	}
}

func TestRejectedMoveDoesNotSpawn(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.grid = Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := g.grid

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.grid != before {
		t.Errorf("no-op move must not change the grid or spawn: %v", g.grid)
	}
	if g.moves != 0 {
		t.Errorf("no-op move should not count, moves = %d", g.moves)
	}
}

func TestWinFlagAndContinue(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.grid = Grid{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if !g.won {
		t.Fatal("merging to 2048 should set the win flag")
	}
	if g.State().GameOver {
		t.Error("winning is not game over")
	}
	if !g.State().Paused {
		t.Error("win overlay should block further moves until confirmed")
	}

	// Moves are ignored while the win overlay is up
	in.Clear()
	in.Set(core.ActionDown)
	before := g.grid
	g.Step(in)
	if g.grid != before {
		t.Error("moves should be gated while win overlay is shown")
	}

	// Confirm continues the session
	in.Clear()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if !g.keepPlaying {
		t.Error("confirm should resume play after winning")
	}
	if g.State().Paused {
		t.Error("state should unfreeze after continuing")
	}
}

func TestGameOverGate(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.grid = Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	g.gameOver = true

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	before := g.grid
	g.Step(in)

	if g.grid != before {
		t.Error("moves after game over must be ignored")
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	// Play a few moves
	dirs := []core.Action{core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp}
	for i := 0; i < 12; i++ {
		in := core.NewInputFrame()
		in.Set(dirs[i%len(dirs)])
		g.Step(in)
	}

	data, ok := g.SaveState()
	if !ok {
		t.Fatal("in-progress game should be saveable")
	}

	restored := New()
	restored.Reset(testConfig(999)) // Different seed; state comes from the blob
	if err := restored.RestoreState(data); err != nil {
		t.Fatalf("RestoreState failed: %v", err)
	}

	if restored.grid != g.grid {
		t.Errorf("restored grid differs:\n%v\nvs\n%v", restored.grid, g.grid)
	}
	if restored.score != g.score {
		t.Errorf("restored score = %d, want %d", restored.score, g.score)
	}
	if restored.moves != g.moves {
		t.Errorf("restored moves = %d, want %d", restored.moves, g.moves)
	}
}

func TestSaveStateSkipsFreshAndFinishedGames(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	if _, ok := g.SaveState(); ok {
		t.Error("untouched game should not be saveable")
	}

	g.moves = 5
	g.gameOver = true
	if _, ok := g.SaveState(); ok {
		t.Error("finished game should not be saveable")
	}
}

func TestRestoreStateRejectsGarbage(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	if err := g.RestoreState([]byte("not json")); err == nil {
		t.Error("RestoreState should reject malformed data")
	}
}

func TestSnapshotStates(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	if s := g.Snapshot(); s.State != StatePlaying {
		t.Errorf("fresh game state = %s, want playing", s.State)
	}

	g.won = true
	if s := g.Snapshot(); s.State != StateWon {
		t.Errorf("won game state = %s, want won", s.State)
	}

	g.keepPlaying = true
	if s := g.Snapshot(); s.State != StatePlaying {
		t.Errorf("continued game state = %s, want playing", s.State)
	}

	g.gameOver = true
	if s := g.Snapshot(); s.State != StateGameOver {
		t.Errorf("finished game state = %s, want game_over", s.State)
	}
}
