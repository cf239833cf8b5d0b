package core

import "fmt"

// Block is one square of a piece. After the piece locks, the grid holds a
// reference to each of its blocks until the block's row is cleared.
type Block struct {
	ID    uint64 // Opaque handle used by views to track the block's visual
	Shape Shape
	Cell  Cell // Board position, updated on lock and when rows above a clear drop
}

// gridCell is a single occupancy slot.
type gridCell struct {
	block    *Block
	occupied bool
}

// Grid is the fixed-size occupancy map of locked blocks.
// Cells are stored column-major: cells[x][y].
type Grid struct {
	cells     [BoardW][BoardH]gridCell
	onRelease func(*Block)
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// SetReleaseHook registers a callback invoked for every block removed by a
// row clear, so the view can dispose of its visual.
func (g *Grid) SetReleaseHook(fn func(*Block)) {
	g.onRelease = fn
}

// InBounds returns true if the cell lies within the board.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < BoardW && c.Y >= 0 && c.Y < BoardH
}

// IsCellFree snaps the position to a cell and reports whether that cell is
// inside the board and unoccupied.
func (g *Grid) IsCellFree(pos Vec) bool {
	c := pos.Snap()
	if !g.InBounds(c) {
		return false
	}
	return !g.cells[c.X][c.Y].occupied
}

// Validate returns true if every position is a free cell.
func (g *Grid) Validate(positions [4]Vec) bool {
	for _, p := range positions {
		if !g.IsCellFree(p) {
			return false
		}
	}
	return true
}

// ValidatePiece returns true if all four of the piece's blocks are free cells.
func (g *Grid) ValidatePiece(p *Piece) bool {
	return g.Validate(p.Positions())
}

// MarkOccupancy commits (or withdraws) the piece's blocks at their current
// positions. Positions must already be validated; an out-of-bounds block
// is a contract violation and panics.
func (g *Grid) MarkOccupancy(p *Piece, occupied bool) {
	positions := p.Positions()
	for i, b := range p.blocks {
		c := positions[i].Snap()
		g.mustBeInBounds(c)
		b.Cell = c
		if occupied {
			g.cells[c.X][c.Y] = gridCell{block: b, occupied: true}
		} else {
			g.cells[c.X][c.Y] = gridCell{}
		}
	}
}

// ClearFullRows checks the row of each of the piece's blocks, in block order,
// and clears every full row found. Rows above a cleared row drop by one,
// including any of the piece's own blocks, so a block that moved down is
// checked at its new row. Rows the piece never touched are not examined.
// Returns the number of rows cleared (0-4).
func (g *Grid) ClearFullRows(p *Piece) int {
	cleared := 0
	for _, b := range p.blocks {
		y := b.Cell.Y
		if !g.rowFull(y) {
			continue
		}
		g.clearRow(y)
		g.dropAbove(y)
		cleared++
	}
	return cleared
}

// rowFull reports whether every column of row y is occupied.
func (g *Grid) rowFull(y int) bool {
	if y < 0 || y >= BoardH {
		return false
	}
	for x := range BoardW {
		if !g.cells[x][y].occupied {
			return false
		}
	}
	return true
}

// clearRow removes every block in row y and releases its visual.
func (g *Grid) clearRow(y int) {
	for x := range BoardW {
		b := g.cells[x][y].block
		g.cells[x][y] = gridCell{}
		if b != nil && g.onRelease != nil {
			g.onRelease(b)
		}
	}
}

// dropAbove shifts every row above y down by one.
func (g *Grid) dropAbove(y int) {
	for row := y + 1; row < BoardH; row++ {
		for x := range BoardW {
			cell := g.cells[x][row]
			if !cell.occupied {
				continue
			}
			if cell.block != nil {
				cell.block.Cell = Cell{X: x, Y: row - 1}
			}
			g.cells[x][row-1] = cell
			g.cells[x][row] = gridCell{}
		}
	}
}

// Occupied reports whether the cell holds a locked block.
// Out-of-bounds cells are never occupied.
func (g *Grid) Occupied(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[c.X][c.Y].occupied
}

// At returns the block locked at the cell, or nil.
func (g *Grid) At(c Cell) *Block {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[c.X][c.Y].block
}

// RowCount returns the number of occupied cells in row y.
func (g *Grid) RowCount(y int) int {
	if y < 0 || y >= BoardH {
		return 0
	}
	n := 0
	for x := range BoardW {
		if g.cells[x][y].occupied {
			n++
		}
	}
	return n
}

// OccupiedCount returns the total number of occupied cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for y := range BoardH {
		n += g.RowCount(y)
	}
	return n
}

// Fill marks a cell occupied by a standalone block.
// Used to build board layouts; the cell must be in bounds.
func (g *Grid) Fill(c Cell, b *Block) {
	g.mustBeInBounds(c)
	if b == nil {
		b = &Block{}
	}
	b.Cell = c
	g.cells[c.X][c.Y] = gridCell{block: b, occupied: true}
}

func (g *Grid) mustBeInBounds(c Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: cell %v outside %dx%d board", c, BoardW, BoardH))
	}
}
