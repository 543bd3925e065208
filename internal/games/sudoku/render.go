package sudoku

import (
	"fmt"
	"strings"

	"github.com/leminhai2007/term-playroom/internal/core"
)

const (
	cellWidth  = 4 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1

	boardX := (g.screenW - boardW - 18) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := (g.screenH - boardH) / 2
	if boardY < 0 {
		boardY = 0
	}

	g.renderBoard(dst, boardX, boardY)
	g.renderPanel(dst, boardX+boardW+2, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// digitColor picks the color for the digit at (x, y): givens plain,
// conflicts red, correct entries cyan.
func (g *Game) digitColor(x, y int) core.Color {
	switch {
	case g.hasConflict(x, y), g.board[y][x] != g.solution[y][x]:
		return core.ColorBrightRed
	case g.given[y][x]:
		return core.ColorWhite
	default:
		return core.ColorBrightCyan
	}
}

// renderBoard draws the 9x9 grid with heavier lines at box boundaries.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := 0; y <= BoardSize; y++ {
		for x := 0; x <= BoardSize; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridCorner(x, y))
			if x < BoardSize {
				line := '─'
				if y%BoxSize == 0 {
					line = '═'
				}
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, line)
				}
			}
			if y < BoardSize {
				line := '│'
				if x%BoxSize == 0 {
					line = '║'
				}
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, line)
				}
			}
		}
	}

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			cellX := boardX + x*cellWidth + 2
			cellY := boardY + y*cellHeight + 1

			if g.board[y][x] != 0 {
				ch := rune('0' + g.board[y][x])
				dst.SetCell(cellX, cellY, ch, g.digitColor(x, y))
			} else if g.notes[y][x] != 0 {
				dst.SetCell(cellX, cellY, '·', core.ColorGray)
			}

			if x == g.cursorX && y == g.cursorY {
				dst.SetCell(cellX-1, cellY, '[', core.ColorBrightYellow)
				dst.SetCell(cellX+1, cellY, ']', core.ColorBrightYellow)
			}
		}
	}
}

// gridCorner returns the junction rune at grid intersection (x, y),
// doubled on box boundaries.
func gridCorner(x, y int) rune {
	boxX := x%BoxSize == 0
	boxY := y%BoxSize == 0
	switch {
	case boxX && boxY:
		switch {
		case x == 0 && y == 0:
			return '╔'
		case x == BoardSize && y == 0:
			return '╗'
		case x == 0 && y == BoardSize:
			return '╚'
		case x == BoardSize && y == BoardSize:
			return '╝'
		case y == 0:
			return '╦'
		case y == BoardSize:
			return '╩'
		case x == 0:
			return '╠'
		case x == BoardSize:
			return '╣'
		default:
			return '╬'
		}
	case boxY:
		return '╪'
	case boxX:
		return '╫'
	default:
		return '┼'
	}
}

// renderPanel draws lives, progress, and the pencil notes for the
// selected cell.
func (g *Game) renderPanel(dst *core.Screen, panelX, panelY int) {
	dst.DrawTextColor(panelX, panelY, "SUDOKU", core.ColorBrightCyan)

	hearts := strings.Repeat("♥", g.lives) + strings.Repeat("♡", g.cfg.Lives-g.lives)
	dst.DrawTextColor(panelX, panelY+2, "Lives: "+hearts, core.ColorBrightRed)
	dst.DrawText(panelX, panelY+3, fmt.Sprintf("Filled: %d/%d", g.filledCount(), BoardSize*BoardSize))

	mode := "digits"
	if g.noteMode {
		mode = "notes"
	}
	dst.DrawText(panelX, panelY+5, "Mode: "+mode)

	if g.notes[g.cursorY][g.cursorX] != 0 {
		dst.DrawText(panelX, panelY+7, "Notes:")
		var marks []string
		for d := 1; d <= BoardSize; d++ {
			if g.notes[g.cursorY][g.cursorX]&(1<<(d-1)) != 0 {
				marks = append(marks, fmt.Sprintf("%d", d))
			}
		}
		dst.DrawTextColor(panelX, panelY+8, strings.Join(marks, " "), core.ColorGray)
	}
}

// filledCount returns the number of non-empty cells.
func (g *Game) filledCount() int {
	n := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if g.board[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// renderOverlays draws pause/win/game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "SOLVED!",
			fmt.Sprintf("Mistakes: %d", g.mistakes), "Press R for a new puzzle")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, "OUT OF LIVES", "Press R for a new puzzle")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | 1-9: Enter | N: Notes | X: Erase | P: Pause | R: Restart"
}
