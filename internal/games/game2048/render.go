package game2048

import (
	"fmt"
	"strconv"

	"github.com/leminhai2007/term-playroom/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// tileColor picks a color per tile value to echo the classic 2048 palette.
func tileColor(val int) core.Color {
	switch {
	case val >= 2048:
		return core.ColorBrightYellow
	case val >= 512:
		return core.ColorBrightRed
	case val >= 128:
		return core.ColorOrange
	case val >= 32:
		return core.ColorBrightMagenta
	case val >= 8:
		return core.ColorBrightCyan
	default:
		return core.ColorWhite
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := Size*cellWidth + 1
	boardH := Size*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
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

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColor(titleX, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	maxStr := fmt.Sprintf("Max: %d", g.grid.MaxTile())
	maxX := boardX + boardW - len(maxStr)
	if maxX < boardX {
		maxX = boardX
	}
	dst.DrawText(maxX, 1, maxStr)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	movesX := boardX + (boardW-len(movesStr))/2
	dst.DrawText(movesX, 2, movesStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Grid lines
	for y := 0; y <= Size; y++ {
		for x := 0; x <= Size; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Size:
				corner = '┐'
			case y == Size && x == 0:
				corner = '└'
			case y == Size && x == Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			val := g.grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColor(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws pause/win/game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.won && !g.keepPlaying:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!",
			fmt.Sprintf("Reached %d", WinTile),
			"Enter: keep playing  R: restart")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.grid.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
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
	return "Arrow keys/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
