package sudoku

import (
	"math/rand"
	"testing"
)

// assertValidSolution checks every row, column, and box holds 1..9.
func assertValidSolution(t *testing.T, b Board) {
	t.Helper()
	for i := 0; i < BoardSize; i++ {
		var row, col [BoardSize + 1]bool
		for j := 0; j < BoardSize; j++ {
			if b[i][j] < 1 || b[i][j] > 9 {
				t.Fatalf("cell (%d,%d) = %d out of range", i, j, b[i][j])
			}
			if row[b[i][j]] {
				t.Errorf("row %d has duplicate %d", i, b[i][j])
			}
			row[b[i][j]] = true
			if col[b[j][i]] {
				t.Errorf("col %d has duplicate %d", i, b[j][i])
			}
			col[b[j][i]] = true
		}
	}
	for boxY := 0; boxY < BoardSize; boxY += BoxSize {
		for boxX := 0; boxX < BoardSize; boxX += BoxSize {
			var seen [BoardSize + 1]bool
			for i := 0; i < BoxSize; i++ {
				for j := 0; j < BoxSize; j++ {
					v := b[boxY+i][boxX+j]
					if seen[v] {
						t.Errorf("box (%d,%d) has duplicate %d", boxY, boxX, v)
					}
					seen[v] = true
				}
			}
		}
	}
}

func TestGenerateValidSolution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	_, solution := Generate(rng, 30)
	assertValidSolution(t, solution)
}

func TestGeneratePuzzleMatchesSolution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	puzzle, solution := Generate(rng, 30)

	holes := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if puzzle[y][x] == 0 {
				holes++
				continue
			}
			if puzzle[y][x] != solution[y][x] {
				t.Errorf("given at (%d,%d) = %d disagrees with solution %d",
					y, x, puzzle[y][x], solution[y][x])
			}
		}
	}
	if holes != 30 {
		t.Errorf("holes = %d, want 30", holes)
	}
}

func TestGeneratedPuzzleHasUniqueSolution(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	puzzle, _ := Generate(rng, 40)

	solutions := 0
	puzzle.solveCount(&solutions)
	if solutions != 1 {
		t.Errorf("solutions = %d, want 1", solutions)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, aSol := Generate(rand.New(rand.NewSource(5)), 40)
	b, bSol := Generate(rand.New(rand.NewSource(5)), 40)
	if a != b || aSol != bSol {
		t.Errorf("same seed produced different puzzles")
	}
}
