package tetris

import (
	"fmt"

	"github.com/leminhai2007/term-playroom/internal/core"
)

// pieceColor maps each tetromino to its classic color.
func pieceColor(kind PieceKind) core.Color {
	switch kind {
	case PieceI:
		return core.ColorBrightCyan
	case PieceO:
		return core.ColorBrightYellow
	case PieceT:
		return core.ColorBrightMagenta
	case PieceS:
		return core.ColorBrightGreen
	case PieceZ:
		return core.ColorBrightRed
	case PieceJ:
		return core.ColorBrightBlue
	default:
		return core.ColorOrange
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW := WellWidth*2 + 2 // Two runes per cell plus borders
	wellH := WellHeight + 2
	wellX := (g.screenW - wellW - 18) / 2
	if wellX < 0 {
		wellX = 0
	}
	wellY := (g.screenH - wellH) / 2
	if wellY < 0 {
		wellY = 0
	}

	g.renderWell(dst, wellX, wellY)
	g.renderPanel(dst, wellX+wellW+2, wellY)
	g.renderOverlays(dst, wellX, wellY, wellW, wellH)
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

// renderWell draws the bordered well, settled blocks, the ghost, and the
// falling piece.
func (g *Game) renderWell(dst *core.Screen, wellX, wellY int) {
	dst.DrawBox(core.Rect{X: wellX, Y: wellY, W: WellWidth*2 + 2, H: WellHeight + 2})

	// Settled blocks
	for y := 0; y < WellHeight; y++ {
		for x := 0; x < WellWidth; x++ {
			if g.well[y][x] == 0 {
				continue
			}
			kind := PieceKind(g.well[y][x] - 1)
			g.drawBlock(dst, wellX+1+x*2, wellY+1+y, pieceColor(kind))
		}
	}

	if g.gameOver {
		return
	}

	// Ghost piece at landing position
	if g.cfg.Gameplay.GhostPiece {
		gy := g.ghostY()
		if gy != g.pieceY {
			for _, c := range cells(g.current, g.rotation) {
				px := wellX + 1 + (g.pieceX+c.X)*2
				py := wellY + 1 + gy + c.Y
				dst.DrawTextColor(px, py, "::", core.ColorGray)
			}
		}
	}

	// Falling piece
	for _, c := range cells(g.current, g.rotation) {
		px := wellX + 1 + (g.pieceX+c.X)*2
		py := wellY + 1 + g.pieceY + c.Y
		g.drawBlock(dst, px, py, pieceColor(g.current))
	}
}

// renderPanel draws score, level, lines, and the next/hold previews.
func (g *Game) renderPanel(dst *core.Screen, panelX, panelY int) {
	dst.DrawTextColor(panelX, panelY, "TETRIS", core.ColorBrightCyan)
	dst.DrawText(panelX, panelY+2, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(panelX, panelY+3, fmt.Sprintf("Lines: %d", g.lines))
	dst.DrawText(panelX, panelY+4, fmt.Sprintf("Level: %d", g.level))

	if g.cfg.Gameplay.ShowNext {
		dst.DrawText(panelX, panelY+6, "Next:")
		g.drawPreview(dst, panelX, panelY+7, g.next)
	}

	if g.cfg.Gameplay.AllowHold {
		dst.DrawText(panelX, panelY+12, "Hold:")
		if g.hasHold {
			g.drawPreview(dst, panelX, panelY+13, g.hold)
		} else {
			dst.DrawTextColor(panelX, panelY+13, "(empty)", core.ColorGray)
		}
	}
}

// drawPreview draws a piece in its spawn rotation inside a 4x4 preview box.
func (g *Game) drawPreview(dst *core.Screen, x, y int, kind PieceKind) {
	for _, c := range cells(kind, 0) {
		g.drawBlock(dst, x+c.X*2, y+c.Y, pieceColor(kind))
	}
}

// drawBlock draws one two-rune-wide block cell.
func (g *Game) drawBlock(dst *core.Screen, x, y int, color core.Color) {
	dst.SetCell(x, y, '█', color)
	dst.SetCell(x+1, y, '█', color)
}

// renderOverlays draws pause/game-over overlays over the well.
func (g *Game) renderOverlays(dst *core.Screen, wellX, wellY, wellW, wellH int) {
	centerX := wellX + wellW/2
	centerY := wellY + wellH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER",
			fmt.Sprintf("Score: %d", g.score), "Press R to restart")
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
	return "←/→: Move | ↑: Rotate | ↓: Soft drop | Enter: Hard drop | C: Hold | P: Pause"
}
