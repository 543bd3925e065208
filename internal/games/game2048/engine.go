// Package game2048 implements the 2048 puzzle. The board transform lives in
// a pure, allocation-free engine: every direction is reduced to a single
// leftward row compaction by rotating the grid, so the merge rules exist in
// exactly one place.
package game2048

import "errors"

// Size is the board dimension. Grids are always Size x Size.
const Size = 4

// Grid is the 4x4 board. 0 is an empty cell; every other value is a power
// of two. Grids are values: engine operations return new grids and never
// mutate their input.
type Grid [Size][Size]int

// Direction is a move direction, used purely as a dispatch key.
type Direction int

const (
	DirLeft Direction = iota
	DirDown
	DirRight
	DirUp
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "invalid"
	}
}

// rotationCount maps a direction to the number of clockwise quarter turns
// that align it with "leftward". The pairing is load-bearing: it is tied to
// rotateCW being clockwise, so changing either side alone breaks the mapping
// between key presses and tile movement.
var rotationCount = map[Direction]int{
	DirLeft:  0,
	DirDown:  1,
	DirRight: 2,
	DirUp:    3,
}

// Rand is the random source the engine consumes. *math/rand.Rand satisfies
// it; tests inject seeded sources for deterministic spawns.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// ErrGridFull is returned by Spawn when the grid has no empty cell.
var ErrGridFull = errors.New("game2048: no empty cell to spawn into")

// fourProbability is the chance a spawned tile is a 4 rather than a 2.
const fourProbability = 0.1

// compactRow slides all non-zero values of one row toward the left end and
// merges adjacent equal pairs left-to-right, at most once per tile per pass.
// Returns the new row and the sum of values created by merges.
func compactRow(row [Size]int) ([Size]int, int) {
	// Drop zeros, preserving order.
	packed := make([]int, 0, Size)
	for _, v := range row {
		if v != 0 {
			packed = append(packed, v)
		}
	}

	var out [Size]int
	delta := 0
	w := 0
	for j := 0; j < len(packed); j++ {
		if j+1 < len(packed) && packed[j] == packed[j+1] {
			// Merge and skip the consumed neighbor so a freshly merged
			// tile cannot merge again in the same pass.
			out[w] = packed[j] * 2
			delta += out[w]
			j++
		} else {
			out[w] = packed[j]
		}
		w++
	}

	return out, delta
}

// rotateCW returns the grid rotated 90 degrees clockwise.
func rotateCW(g Grid) Grid {
	var out Grid
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			out[col][Size-1-row] = g[row][col]
		}
	}
	return out
}

// rotateN returns the grid rotated clockwise n quarter turns.
func rotateN(g Grid, n int) Grid {
	for i := 0; i < n%4; i++ {
		g = rotateCW(g)
	}
	return g
}

// Move applies a move in the given direction. It returns the new grid,
// whether any cell changed, and the score delta (the sum of values of all
// tiles created by merges in this move). The caller decides whether to
// spawn a tile afterwards; Move never spawns.
func (g Grid) Move(dir Direction) (Grid, bool, int) {
	count, ok := rotationCount[dir]
	if !ok {
		return g, false, 0
	}

	rotated := rotateN(g, count)

	var moved Grid
	delta := 0
	for y := 0; y < Size; y++ {
		row, rowDelta := compactRow(rotated[y])
		moved[y] = row
		delta += rowDelta
	}

	result := rotateN(moved, (4-count)%4)
	return result, result != g, delta
}

// Spawn places one new tile (2 with probability 0.9, 4 with probability 0.1)
// at a uniformly chosen empty cell and returns the new grid. Calling it on a
// full grid is a precondition violation and returns ErrGridFull.
func (g Grid) Spawn(rng Rand) (Grid, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, ErrGridFull
	}

	cell := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < fourProbability {
		value = 4
	}

	g[cell.Y][cell.X] = value
	return g, nil
}

// NewGrid returns a grid seeded with exactly two random tiles at distinct
// cells, each independently 2 (90%) or 4 (10%).
func NewGrid(rng Rand) Grid {
	var g Grid
	for i := 0; i < 2; i++ {
		// Cannot fail: at most one cell of sixteen is occupied.
		g, _ = g.Spawn(rng)
	}
	return g
}

// IsTerminal reports whether no legal move exists: the board is full and no
// two horizontally or vertically adjacent cells share a value. Callers must
// check this after spawning, since the spawned tile can complete the lock.
func (g Grid) IsTerminal() bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == 0 {
				return false
			}
			if x < Size-1 && g[y][x] == g[y][x+1] {
				return false
			}
			if y < Size-1 && g[y][x] == g[y+1][x] {
				return false
			}
		}
	}
	return true
}

// CellRef is a board coordinate.
type CellRef struct {
	X, Y int
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []CellRef {
	var cells []CellRef
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == 0 {
				cells = append(cells, CellRef{X: x, Y: y})
			}
		}
	}
	return cells
}

// MaxTile returns the largest tile value on the grid.
func (g Grid) MaxTile() int {
	max := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] > max {
				max = g[y][x]
			}
		}
	}
	return max
}

// Sum returns the total of all tile values on the grid.
func (g Grid) Sum() int {
	total := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			total += g[y][x]
		}
	}
	return total
}
