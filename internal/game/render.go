package game

import (
	"fmt"

	"github.com/vovakirdan/oddhue/internal/core"
	"github.com/vovakirdan/oddhue/internal/engine"
)

const (
	hudHeight = 2 // Top HUD lines

	cellWidth  = 2 // Each board cell is two block runes wide
	gapWidth   = 2 // Blank columns between cells, leaves room for the cursor
	cellStride = cellWidth + gapWidth

	maxGridSize = 8
)

// Render draws the game to the screen. The destination tracks the live
// terminal size, so the fit check is refreshed here: a resize while the
// game-over overlay is up never goes through Reset.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.screenW, g.screenH = dst.Width(), dst.Height()
	g.updateFit()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	if g.session.Status() == engine.StatusEnded {
		g.renderGameOver(dst)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeZen {
		hud = fmt.Sprintf(" Odd Hue (Zen) — Score: %d  Level: %d", g.session.Score(), g.session.Level())
	} else {
		hud = fmt.Sprintf(" Odd Hue — Score: %d  Level: %d  Time: %ds", g.session.Score(), g.session.Level(), g.session.TimeLeft())
	}

	switch g.flash {
	case flashCorrect:
		hud += "  +1"
	case flashWrong:
		if g.mode == ModeZen {
			hud += "  miss"
		} else {
			hud += fmt.Sprintf("  -%ds", g.session.Rules().PenaltySeconds)
		}
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the color grid with the cursor markers.
func (g *Game) renderBoard(dst *core.Screen) {
	round := g.session.Round()
	size := round.GridSize
	if size <= 0 {
		return
	}

	boardW := size*cellStride - gapWidth
	offsetX := (dst.Width() - boardW) / 2
	offsetY := hudHeight + (dst.Height()-hudHeight-size)/2

	baseHex := core.Color(round.Base.Hex())
	diffHex := core.Color(round.Diff.Hex())

	for cy := 0; cy < size; cy++ {
		for cx := 0; cx < size; cx++ {
			fg := baseHex
			if cy*size+cx == round.DiffIndex {
				fg = diffHex
			}
			x := offsetX + cx*cellStride
			y := offsetY + cy
			for i := 0; i < cellWidth; i++ {
				dst.SetColored(x+i, y, '█', fg)
			}
		}
	}

	// Cursor brackets sit in the gap columns around the selected cell
	cx := offsetX + g.cursorX*cellStride
	cy := offsetY + g.cursorY
	dst.Set(cx-1, cy, '[')
	dst.Set(cx+cellWidth, cy, ']')
}

// renderGameOver draws the end-of-game overlay.
func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"Time's up!",
		fmt.Sprintf("Final score: %d", g.session.Score()),
	}
	if summary, ok := g.session.LastSummary(); ok {
		lines = append(lines, fmt.Sprintf("Last pair: %s vs %s (delta %d)", summary.Base.Hex(), summary.Diff.Hex(), summary.Delta))
	}
	if g.celebrate {
		lines = append(lines, "* Great eye! What a run! *")
	}
	lines = append(lines, "Press R to restart")

	g.renderOverlayLines(dst, lines)
}

// renderOverlay draws a centered two-line overlay box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	g.renderOverlayLines(dst, []string{line1, line2})
}

// renderOverlayLines draws a centered overlay box around the given lines.
func (g *Game) renderOverlayLines(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCentered(boxY+1+i, line)
	}
}
