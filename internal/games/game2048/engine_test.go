package game2048

import (
	"math/rand"
	"testing"
)

func TestCompactRow(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		delta    int
	}{
		{
			name:     "merge with trailing value",
			input:    [Size]int{2, 0, 2, 4},
			expected: [Size]int{4, 4, 0, 0},
			delta:    4,
		},
		{
			name:     "four in a row merges pairwise",
			input:    [Size]int{2, 2, 2, 2},
			expected: [Size]int{4, 4, 0, 0},
			delta:    8,
		},
		{
			name:     "already leftmost is a no-op",
			input:    [Size]int{2, 0, 0, 0},
			expected: [Size]int{2, 0, 0, 0},
			delta:    0,
		},
		{
			name:     "simple merge",
			input:    [Size]int{2, 2, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
			delta:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [Size]int{2, 2, 2, 0},
			expected: [Size]int{4, 2, 0, 0},
			delta:    4,
		},
		{
			name:     "no merge possible",
			input:    [Size]int{2, 4, 8, 16},
			expected: [Size]int{2, 4, 8, 16},
			delta:    0,
		},
		{
			name:     "slide with gaps",
			input:    [Size]int{0, 2, 0, 2},
			expected: [Size]int{4, 0, 0, 0},
			delta:    4,
		},
		{
			name:     "merged pair does not re-merge",
			input:    [Size]int{4, 4, 8, 0},
			expected: [Size]int{8, 8, 0, 0},
			delta:    8,
		},
		{
			name:     "empty row",
			input:    [Size]int{0, 0, 0, 0},
			expected: [Size]int{0, 0, 0, 0},
			delta:    0,
		},
		{
			name:     "big merge counts doubled value",
			input:    [Size]int{512, 512, 0, 0},
			expected: [Size]int{1024, 0, 0, 0},
			delta:    1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, delta := compactRow(tt.input)
			if result != tt.expected {
				t.Errorf("compactRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if delta != tt.delta {
				t.Errorf("compactRow(%v) delta = %d, want %d", tt.input, delta, tt.delta)
			}
		})
	}
}

func TestRotationRoundTrip(t *testing.T) {
	g := Grid{
		{2, 4, 0, 8},
		{0, 16, 32, 0},
		{64, 0, 0, 128},
		{0, 256, 512, 2},
	}

	if rotateN(g, 4) != g {
		t.Error("four clockwise rotations should return the original grid")
	}

	// A single rotation moves (row, col) to (col, Size-1-row)
	r := rotateCW(g)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if r[x][Size-1-y] != g[y][x] {
				t.Fatalf("rotateCW misplaced cell (%d,%d)", y, x)
			}
		}
	}
}

func TestMoveAllDirections(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected Grid
	}{
		{
			dir: DirLeft,
			expected: Grid{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			dir: DirRight,
			expected: Grid{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
		},
		{
			dir: DirUp,
			expected: Grid{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			dir: DirDown,
			expected: Grid{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, changed, _ := g.Move(tt.dir)
			if result != tt.expected {
				t.Errorf("Move(%s):\ngot  %v\nwant %v", tt.dir, result, tt.expected)
			}
			if !changed {
				t.Errorf("Move(%s) should report a change", tt.dir)
			}
		})
	}
}

func TestMoveMatchesRotationDefinition(t *testing.T) {
	// Every direction must be exactly: rotate clockwise N times, compact
	// each row leftward, rotate back. Checked against the dispatch table.
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		var g Grid
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if rng.Float64() < 0.6 {
					g[y][x] = 2 << rng.Intn(6)
				}
			}
		}

		for dir, count := range rotationCount {
			rotated := rotateN(g, count)
			var compacted Grid
			for y := 0; y < Size; y++ {
				compacted[y], _ = compactRow(rotated[y])
			}
			want := rotateN(compacted, (4-count)%4)

			got, _, _ := g.Move(dir)
			if got != want {
				t.Fatalf("Move(%s) diverges from rotate-compact-rotate on %v", dir, g)
			}
		}
	}
}

func TestMoveConservesMass(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 100; trial++ {
		var g Grid
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if rng.Float64() < 0.5 {
					g[y][x] = 2 << rng.Intn(8)
				}
			}
		}

		for _, dir := range []Direction{DirLeft, DirDown, DirRight, DirUp} {
			result, changed, delta := g.Move(dir)
			if !changed {
				continue
			}
			if result.Sum() != g.Sum()+delta {
				t.Fatalf("Move(%s) broke conservation: in %d, out %d, delta %d",
					dir, g.Sum(), result.Sum(), delta)
			}
		}
	}
}

func TestMoveNoChange(t *testing.T) {
	g := Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, changed, delta := g.Move(DirLeft)
	if changed {
		t.Error("left move on left-packed row should not report a change")
	}
	if delta != 0 {
		t.Errorf("no-op move delta = %d, want 0", delta)
	}
	if result != g {
		t.Error("no-op move should return an identical grid")
	}
}

func TestEndToEndScenario(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, changed, delta := g.Move(DirLeft)

	want := Grid{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if result != want {
		t.Errorf("got %v, want %v", result, want)
	}
	if !changed {
		t.Error("changed should be true")
	}
	if delta != 4 {
		t.Errorf("delta = %d, want 4", delta)
	}
}

// lockedGrid is full with alternating values so no adjacent pair matches.
var lockedGrid = Grid{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func TestIsTerminal(t *testing.T) {
	if !lockedGrid.IsTerminal() {
		t.Error("full grid with no adjacent pair should be terminal")
	}

	// Any empty cell means not terminal
	withHole := lockedGrid
	withHole[2][1] = 0
	if withHole.IsTerminal() {
		t.Error("grid with an empty cell is never terminal")
	}

	// A horizontal adjacent pair means not terminal
	withRowPair := lockedGrid
	withRowPair[0][1] = 2
	if withRowPair.IsTerminal() {
		t.Error("full grid with a horizontal pair is not terminal")
	}

	// A vertical adjacent pair means not terminal
	withColPair := lockedGrid
	withColPair[1][0] = 2
	if withColPair.IsTerminal() {
		t.Error("full grid with a vertical pair is not terminal")
	}
}

func TestLockedGridMovesAreNoOps(t *testing.T) {
	for _, dir := range []Direction{DirLeft, DirDown, DirRight, DirUp} {
		result, changed, delta := lockedGrid.Move(dir)
		if changed || delta != 0 {
			t.Errorf("Move(%s) on locked grid: changed=%v delta=%d, want no-op", dir, changed, delta)
		}
		if result != lockedGrid {
			t.Errorf("Move(%s) on locked grid altered the board", dir)
		}
	}
}

func TestSpawnOnFullGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	result, err := lockedGrid.Spawn(rng)
	if err != ErrGridFull {
		t.Errorf("Spawn on full grid: err = %v, want ErrGridFull", err)
	}
	if result != lockedGrid {
		t.Error("failed Spawn should return the input grid unchanged")
	}
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var g Grid // Empty board, every cell a candidate
	twos, fours := 0, 0
	const trials = 10000

	for i := 0; i < trials; i++ {
		result, err := g.Spawn(rng)
		if err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}

		// Find the spawned tile and check it landed on an empty cell
		found := 0
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if result[y][x] != g[y][x] {
					if g[y][x] != 0 {
						t.Fatal("Spawn overwrote a non-empty cell")
					}
					found++
					switch result[y][x] {
					case 2:
						twos++
					case 4:
						fours++
					default:
						t.Fatalf("spawned value %d, want 2 or 4", result[y][x])
					}
				}
			}
		}
		if found != 1 {
			t.Fatalf("Spawn changed %d cells, want exactly 1", found)
		}
	}

	ratio := float64(fours) / float64(trials)
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("four ratio = %.3f over %d trials, want ~0.10", ratio, trials)
	}
	if twos+fours != trials {
		t.Errorf("twos + fours = %d, want %d", twos+fours, trials)
	}
}

func TestNewGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	g := NewGrid(rng)

	tiles := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch g[y][x] {
			case 0:
			case 2, 4:
				tiles++
			default:
				t.Errorf("initial grid has invalid value %d", g[y][x])
			}
		}
	}
	if tiles != 2 {
		t.Errorf("initial grid has %d tiles, want exactly 2", tiles)
	}

	// Same seed, same board
	g2 := NewGrid(rand.New(rand.NewSource(12345)))
	if g != g2 {
		t.Error("same seed should produce the same initial grid")
	}
}
