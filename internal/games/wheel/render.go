package wheel

import (
	"fmt"

	"github.com/leminhai2007/term-playroom/internal/core"
)

// sliceColors cycles through a small palette so adjacent sectors differ.
var sliceColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	listW := g.maxLabelLen() + 10
	listH := len(g.cfg.Slices) + 2
	listX := (g.screenW - listW) / 2
	listY := (g.screenH - listH - 4) / 2
	if listY < 1 {
		listY = 1
	}

	title := "LUCKY WHEEL"
	dst.DrawTextColor(listX+(listW-len(title))/2, listY-1, title, core.ColorBrightYellow)

	g.renderSlices(dst, listX, listY, listW)
	g.renderStatus(dst, listX, listY+listH+1, listW)

	if g.paused {
		g.drawOverlay(dst, listX+listW/2, listY+listH/2, "PAUSED", "Press P to resume")
	}
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

func (g *Game) maxLabelLen() int {
	max := 0
	for _, s := range g.cfg.Slices {
		if len(s.Label) > max {
			max = len(s.Label)
		}
	}
	return max
}

// renderSlices draws the prize list with the pointer on the active sector.
// While spinning the pointer tracks the live wheel angle, which is what
// makes the spin visible at all in a text UI.
func (g *Game) renderSlices(dst *core.Screen, listX, listY, listW int) {
	dst.DrawBox(core.Rect{X: listX, Y: listY, W: listW, H: len(g.cfg.Slices) + 2})

	active := g.pointerIndex()
	for i, s := range g.cfg.Slices {
		y := listY + 1 + i
		color := sliceColors[i%len(sliceColors)]

		label := fmt.Sprintf("%-*s %4d", g.maxLabelLen(), s.Label, s.Points)
		dst.DrawTextColor(listX+4, y, label, color)

		if i == active {
			dst.DrawTextColor(listX+1, y, "▶", core.ColorBrightWhite)
		}
	}
}

// renderStatus draws score, spin count, and the last result line.
func (g *Game) renderStatus(dst *core.Screen, x, y, w int) {
	dst.DrawText(x, y, fmt.Sprintf("Score: %d   Spins: %d", g.score, g.spins))

	switch {
	case g.spinning:
		dst.DrawTextColor(x, y+1, "Spinning...", core.ColorBrightYellow)
	case g.lastIndex >= 0:
		won := g.cfg.Slices[g.lastIndex]
		dst.DrawTextColor(x, y+1, fmt.Sprintf("You won: %s (+%d)", won.Label, won.Points),
			core.ColorBrightGreen)
	default:
		dst.DrawText(x, y+1, "Press Enter to spin")
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
	return "Enter: Spin | P: Pause | R: Restart | Q: Quit"
}
