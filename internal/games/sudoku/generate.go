// Package sudoku implements a 9x9 Sudoku game with local puzzle
// generation, pencil notes, and conflict highlighting.
package sudoku

import "math/rand"

// Board dimensions.
const (
	BoardSize = 9
	BoxSize   = 3
)

// Board is a 9x9 Sudoku grid. Zero means an empty cell.
type Board [BoardSize][BoardSize]int

// Generate builds a full valid solution, then removes the requested number
// of digits while keeping the solution unique. Returns the puzzle and its
// solution.
func Generate(rng *rand.Rand, holes int) (puzzle, solution Board) {
	var b Board
	b.fillDiagonal(rng)
	b.fillRemaining(0, BoxSize)

	solution = b
	b.removeDigits(rng, holes)
	return b, solution
}

// fillDiagonal fills the three diagonal boxes. They share no row or column
// with each other, so each can be filled independently.
func (b *Board) fillDiagonal(rng *rand.Rand) {
	for i := 0; i < BoardSize; i += BoxSize {
		b.fillBox(rng, i, i)
	}
}

func (b *Board) fillBox(rng *rand.Rand, row, col int) {
	for i := 0; i < BoxSize; i++ {
		for j := 0; j < BoxSize; j++ {
			num := 0
			for {
				num = rng.Intn(BoardSize) + 1
				if b.unusedInBox(row, col, num) {
					break
				}
			}
			b[row+i][col+j] = num
		}
	}
}

// isSafe reports whether num can be legally placed at (row, col).
func (b *Board) isSafe(row, col, num int) bool {
	return b.unusedInRow(row, num) &&
		b.unusedInCol(col, num) &&
		b.unusedInBox(row-row%BoxSize, col-col%BoxSize, num)
}

func (b *Board) unusedInRow(row, num int) bool {
	for j := 0; j < BoardSize; j++ {
		if b[row][j] == num {
			return false
		}
	}
	return true
}

func (b *Board) unusedInCol(col, num int) bool {
	for i := 0; i < BoardSize; i++ {
		if b[i][col] == num {
			return false
		}
	}
	return true
}

func (b *Board) unusedInBox(rowStart, colStart, num int) bool {
	for i := 0; i < BoxSize; i++ {
		for j := 0; j < BoxSize; j++ {
			if b[rowStart+i][colStart+j] == num {
				return false
			}
		}
	}
	return true
}

// fillRemaining backtracks over all cells outside the diagonal boxes.
func (b *Board) fillRemaining(i, j int) bool {
	if j >= BoardSize && i < BoardSize-1 {
		i++
		j = 0
	}
	if i >= BoardSize && j >= BoardSize {
		return true
	}
	// Skip the already-filled diagonal boxes
	if i < BoxSize {
		if j < BoxSize {
			j = BoxSize
		}
	} else if i < BoardSize-BoxSize {
		if j == (i/BoxSize)*BoxSize {
			j += BoxSize
		}
	} else {
		if j == BoardSize-BoxSize {
			i++
			j = 0
			if i >= BoardSize {
				return true
			}
		}
	}

	for num := 1; num <= BoardSize; num++ {
		if b.isSafe(i, j, num) {
			b[i][j] = num
			if b.fillRemaining(i, j+1) {
				return true
			}
			b[i][j] = 0
		}
	}
	return false
}

// removeDigits clears up to k cells, keeping only removals that leave the
// puzzle with a unique solution. Gives up after a bounded number of
// attempts so hard hole counts cannot loop forever.
func (b *Board) removeDigits(rng *rand.Rand, k int) {
	attempts := BoardSize * BoardSize * 10
	for k > 0 && attempts > 0 {
		attempts--
		cell := rng.Intn(BoardSize * BoardSize)
		i := cell / BoardSize
		j := cell % BoardSize
		if b[i][j] == 0 {
			continue
		}

		backup := b[i][j]
		b[i][j] = 0

		solutions := 0
		b.solveCount(&solutions)
		if solutions != 1 {
			b[i][j] = backup
			continue
		}
		k--
	}
}

// solveCount counts solutions by backtracking, stopping early past two.
func (b *Board) solveCount(count *int) {
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			if b[i][j] != 0 {
				continue
			}
			for num := 1; num <= BoardSize; num++ {
				if b.isSafe(i, j, num) {
					b[i][j] = num
					b.solveCount(count)
					b[i][j] = 0
					if *count > 1 {
						return
					}
				}
			}
			return
		}
	}
	*count++
}
