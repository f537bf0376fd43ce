package cookieshift

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-cookieshift/internal/core"
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

	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border
	hudHeight := 2

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 2 // leave a margin row for the ejected piece

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)
	g.renderPieces(dst, boardX, boardY)
	g.renderCursor(dst, boardX, boardY)

	if g.paused {
		g.renderPauseOverlay(dst, boardX, boardY, boardW, boardH)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	y := g.screenH / 2
	dst.DrawText((g.screenW-len(msg))/2, y, msg)

	hint := "Please resize terminal"
	dst.DrawText((g.screenW-len(hint))/2, y+1, hint)
}

// renderHUD draws the title and the clear counter.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "Cookie Shift"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	clears := fmt.Sprintf("Clears: %d", g.clears)
	dst.DrawTextColored(boardX, 1, clears, core.ColorBrightWhite)
}

// renderGrid draws the 5x5 grid borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := 0; y <= BoardSize; y++ {
		for x := 0; x <= BoardSize; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, core.ColorGray)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', core.ColorGray)
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderPieces draws every visible sprite at its interpolated position,
// so sliding pieces appear between cells mid-animation.
func (g *Game) renderPieces(dst *core.Screen, boardX, boardY int) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			g.renderSprite(dst, boardX, boardY, &g.anim.sprites[y][x])
		}
	}
	g.renderSprite(dst, boardX, boardY, &g.anim.extra)
}

// renderSprite draws a single piece sprite.
func (g *Game) renderSprite(dst *core.Screen, boardX, boardY int, sp *Sprite) {
	if !sp.Visible || sp.Index < 0 || sp.Index >= len(g.cfg.Pieces) {
		return
	}

	px := boardX + int(math.Round(sp.X*cellWidth)) + cellWidth/2
	py := boardY + int(math.Round(sp.Y*cellHeight)) + cellHeight/2

	pc := g.cfg.Pieces[sp.Index]
	glyph := ' '
	for _, r := range pc.Glyph {
		glyph = r
		break
	}
	dst.SetCell(px, py, glyph, core.ColorByName(pc.Color))
}

// renderCursor draws the player marker as brackets around the cursor cell.
func (g *Game) renderCursor(dst *core.Screen, boardX, boardY int) {
	px := boardX + g.cursor.X*cellWidth
	py := boardY + g.cursor.Y*cellHeight + cellHeight/2

	dst.SetCell(px+1, py, '[', core.ColorBrightCyan)
	dst.SetCell(px+cellWidth-1, py, ']', core.ColorBrightCyan)
}

// renderPauseOverlay draws the pause box over the board.
func (g *Game) renderPauseOverlay(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	lines := []string{"PAUSED", "Press P to resume"}

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := boardX + boardW/2 - boxW/2
	boxY := boardY + boardH/2 - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(boxX+(boxW-len(line))/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "E/D/S/F or arrows: Move | +Shift: Slide | Space: Reset | P: Pause | Q: Quit"
}
