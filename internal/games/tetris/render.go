package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Layout constants. Each board cell is drawn two characters wide.
const (
	cellW      = 2
	panelW     = 12
	boardTop   = 1 // Title row above the board
	boardOuter = core.BoardW*cellW + 2

	// MinWidth and MinHeight are the smallest screen the layout fits.
	MinWidth  = panelW + boardOuter + panelW
	MinHeight = boardTop + core.BoardH + 2
)

const (
	blockGlyph = "██"
	ghostGlyph = "░░"
	emptyGlyph = " ·"
)

// shapeColor returns the display color of a shape.
func shapeColor(s core.Shape) platformcore.Color {
	switch s {
	case core.ShapeI:
		return platformcore.ColorCyan
	case core.ShapeJ:
		return platformcore.ColorBlue
	case core.ShapeL:
		return platformcore.ColorOrange
	case core.ShapeO:
		return platformcore.ColorYellow
	case core.ShapeS:
		return platformcore.ColorGreen
	case core.ShapeT:
		return platformcore.ColorMagenta
	case core.ShapeZ:
		return platformcore.ColorRed
	default:
		return platformcore.ColorDefault
	}
}

// layout holds the screen rectangles of the board and side panels.
type layout struct {
	board platformcore.Rect
	hold  platformcore.Rect
	stats platformcore.Rect
	next  platformcore.Rect
}

func (g *Game) layout() layout {
	boardX := (g.screenW - boardOuter) / 2
	board := platformcore.NewRect(boardX, boardTop, boardOuter, core.BoardH+2)
	preview := len(g.view.upcoming)

	return layout{
		board: board,
		hold:  platformcore.NewRect(board.X-panelW, board.Y, panelW, 5),
		stats: platformcore.NewRect(board.X-panelW, board.Y+6, panelW, 10),
		next:  platformcore.NewRect(board.Right(), board.Y, panelW, 2+platformcore.Max(preview*3-1, 2)),
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	dst.DrawTextCenteredColor(0, "T E T R I S", platformcore.ColorBrightWhite)

	g.renderBoard(dst, l.board)
	g.renderHold(dst, l.hold)
	g.renderStats(dst, l.stats)
	g.renderNext(dst, l.next)

	switch {
	case g.session.GameOver():
		g.renderOverlay(dst, l.board, "GAME OVER", "R to restart")
	case g.paused:
		g.renderOverlay(dst, l.board, "PAUSED", "P to continue")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
}

// cellOrigin maps a board cell to the screen position of its left glyph.
func cellOrigin(board platformcore.Rect, c core.Cell) (int, int) {
	inner := board.Inset(1)
	return inner.X + c.X*cellW, inner.Y + (core.BoardH - 1 - c.Y)
}

func (g *Game) renderBoard(dst *platformcore.Screen, board platformcore.Rect) {
	dst.DrawBox(board, platformcore.ColorGray)
	grid := g.session.Grid()

	for y := range core.BoardH {
		for x := range core.BoardW {
			c := core.C(x, y)
			sx, sy := cellOrigin(board, c)
			if b := grid.At(c); b != nil {
				dst.DrawTextColor(sx, sy, blockGlyph, shapeColor(b.Shape))
			} else {
				dst.DrawTextColor(sx, sy, emptyGlyph, platformcore.ColorDim)
			}
		}
	}

	p := g.session.Active()
	if p == nil {
		return
	}
	if g.cfg.Gameplay.Ghost {
		for _, pos := range p.GhostPositions() {
			sx, sy := cellOrigin(board, pos.Snap())
			dst.DrawTextColor(sx, sy, ghostGlyph, platformcore.ColorDim)
		}
	}
	color := shapeColor(p.Shape())
	for _, pos := range p.Positions() {
		sx, sy := cellOrigin(board, pos.Snap())
		dst.DrawTextColor(sx, sy, blockGlyph, color)
	}
}

// previewCells returns a shape's spawn footprint normalized to a 4x2 box,
// with y counted downward from the top row.
func previewCells(s core.Shape) []core.Cell {
	anchor := core.SpawnCell.Add(core.SpawnOffset(s))
	cells := make([]core.Cell, 0, 4)
	minX, maxY := core.BoardW, -1
	for _, o := range core.Footprint(s, 0) {
		c := anchor.Add(o).Snap()
		minX = platformcore.Min(minX, c.X)
		maxY = platformcore.Max(maxY, c.Y)
		cells = append(cells, c)
	}
	for i, c := range cells {
		cells[i] = core.C(c.X-minX, maxY-c.Y)
	}
	return cells
}

// drawShape draws a small shape with its top-left corner at (x, y).
func drawShape(dst *platformcore.Screen, x, y int, s core.Shape, color platformcore.Color) {
	for _, c := range previewCells(s) {
		dst.DrawTextColor(x+c.X*cellW, y+c.Y, blockGlyph, color)
	}
}

func (g *Game) renderHold(dst *platformcore.Screen, r platformcore.Rect) {
	dst.DrawBox(r, platformcore.ColorGray)
	dst.DrawText(r.X+2, r.Y, "HOLD")
	if !g.view.hasHeld {
		return
	}
	color := shapeColor(g.view.held)
	if !g.session.CanHold() {
		color = platformcore.ColorDim
	}
	drawShape(dst, r.X+2, r.Y+2, g.view.held, color)
}

func (g *Game) renderNext(dst *platformcore.Screen, r platformcore.Rect) {
	dst.DrawBox(r, platformcore.ColorGray)
	dst.DrawText(r.X+2, r.Y, "NEXT")
	for i, s := range g.view.upcoming {
		drawShape(dst, r.X+2, r.Y+1+i*3, s, shapeColor(s))
	}
}

func (g *Game) renderStats(dst *platformcore.Screen, r platformcore.Rect) {
	dst.DrawBox(r, platformcore.ColorGray)
	score := g.session.Score()
	x := r.X + 1

	dst.DrawTextColor(x, r.Y+1, "SCORE", platformcore.ColorGray)
	dst.DrawText(x, r.Y+2, fmt.Sprintf("%d", score.Score()))
	dst.DrawTextColor(x, r.Y+3, "LINES", platformcore.ColorGray)
	dst.DrawText(x, r.Y+4, fmt.Sprintf("%d", score.Lines()))
	dst.DrawTextColor(x, r.Y+5, "LEVEL", platformcore.ColorGray)
	dst.DrawText(x, r.Y+6, fmt.Sprintf("%d", score.Level()))
	if perLevel := g.cfg.Scoring.LinesPerLevel; perLevel > 0 && !config.IsFixedPreset(g.preset) {
		progress := fmt.Sprintf("%d/%d", score.LevelProgress(), perLevel)
		dst.DrawTextColor(r.Right()-1-len(progress), r.Y+6, progress, platformcore.ColorDim)
	}

	if g.view.callout != "" {
		dst.DrawTextColor(x, r.Y+7, g.view.callout, platformcore.ColorBrightYellow)
		if g.view.lastPoints > 0 {
			dst.DrawText(x, r.Y+8, fmt.Sprintf("+%d", g.view.lastPoints))
		}
	}
}

// renderOverlay draws a boxed two-line message centered on the board.
func (g *Game) renderOverlay(dst *platformcore.Screen, board platformcore.Rect, line1, line2 string) {
	boxW := platformcore.Max(len(line1), len(line2)) + 4
	boxH := 5
	cx, cy := board.Center()
	box := platformcore.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	dst.DrawTextColor(box.X+(boxW-len(line1))/2, box.Y+1, line1, platformcore.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}
