package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeAt binds a new piece to g at anchor and puts it into play.
func placeAt(g *Grid, h Host, shape Shape, rotation int, anchor Vec) *Piece {
	p := NewPiece(shape)
	p.place(g, h, anchor, time.Second, DefaultLockDelay)
	p.rotation = rotation
	p.activate()
	return p
}

func fillRow(g *Grid, y int, skip ...int) {
	for x := range BoardW {
		if contains(skip, x) {
			continue
		}
		g.Fill(C(x, y), nil)
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func TestGridBounds(t *testing.T) {
	g := NewGrid()

	tests := []struct {
		name string
		pos  Vec
		free bool
	}{
		{"origin", V(0, 0), true},
		{"top right", V(9, 19), true},
		{"left of board", V(-1, 5), false},
		{"right of board", V(10, 5), false},
		{"below floor", V(3, -1), false},
		{"above ceiling", V(3, 20), false},
		{"snaps down", V(3.4, 2.4), true},
		{"snaps off board", V(9.6, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.free, g.IsCellFree(tt.pos))
		})
	}
}

func TestGridIsCellFreeSnaps(t *testing.T) {
	g := NewGrid()
	g.Fill(C(3, 3), nil)

	assert.False(t, g.IsCellFree(V(3.4, 2.6)))
	assert.False(t, g.IsCellFree(V(2.5, 3)), "half cells round away from zero")
	assert.True(t, g.IsCellFree(V(3.4, 2.4)))
}

func TestGridValidate(t *testing.T) {
	g := NewGrid()
	positions := [4]Vec{V(0, 0), V(1, 0), V(2, 0), V(3, 0)}
	assert.True(t, g.Validate(positions))

	g.Fill(C(2, 0), nil)
	assert.False(t, g.Validate(positions))

	positions[2] = V(2, 1)
	assert.True(t, g.Validate(positions))
}

func TestGridMarkOccupancy(t *testing.T) {
	g := NewGrid()
	p := placeAt(g, nil, ShapeT, 0, V(4, 5))

	g.MarkOccupancy(p, true)
	assert.Equal(t, 4, g.OccupiedCount())
	for i, pos := range p.Positions() {
		c := pos.Snap()
		assert.True(t, g.Occupied(c))
		assert.Same(t, p.Blocks()[i], g.At(c))
		assert.Equal(t, c, p.Blocks()[i].Cell)
	}

	g.MarkOccupancy(p, false)
	assert.Equal(t, 0, g.OccupiedCount())
}

func TestGridMarkOccupancyOutOfBoundsPanics(t *testing.T) {
	g := NewGrid()
	p := placeAt(g, nil, ShapeT, 0, V(0, 5))

	assert.Panics(t, func() { g.MarkOccupancy(p, true) })
}

func TestGridClearSingleRow(t *testing.T) {
	g := NewGrid()
	fillRow(g, 0, 6, 7, 8, 9)
	g.Fill(C(0, 1), nil)
	above := &Block{}
	g.Fill(C(5, 3), above)

	var released []*Block
	g.SetReleaseHook(func(b *Block) { released = append(released, b) })

	p := placeAt(g, nil, ShapeI, 0, V(7.5, -0.5))
	require.True(t, g.ValidatePiece(p))
	g.MarkOccupancy(p, true)

	assert.Equal(t, 1, g.ClearFullRows(p))
	assert.Len(t, released, BoardW)
	assert.Equal(t, 2, g.OccupiedCount())
	assert.True(t, g.Occupied(C(0, 0)), "row 1 dropped into row 0")
	assert.True(t, g.Occupied(C(5, 2)))
	assert.False(t, g.Occupied(C(5, 3)))
	assert.Equal(t, C(5, 2), above.Cell)
	assert.Same(t, above, g.At(C(5, 2)))
}

func TestGridClearFourRows(t *testing.T) {
	for _, rotation := range []int{1, 3} {
		g := NewGrid()
		for y := range 4 {
			fillRow(g, y, 9)
		}
		g.Fill(C(2, 4), nil)

		// Vertical I in column 9 covering rows 0-3, listed top-down for
		// rotation 1 and bottom-up for rotation 3.
		anchor := V(8.5, 1.5)
		if rotation == 3 {
			anchor = V(9.5, 1.5)
		}
		p := placeAt(g, nil, ShapeI, rotation, anchor)
		for _, pos := range p.Positions() {
			require.Equal(t, 9, pos.Snap().X)
		}
		require.True(t, g.ValidatePiece(p))
		g.MarkOccupancy(p, true)

		assert.Equal(t, 4, g.ClearFullRows(p), "rotation %d", rotation)
		assert.Equal(t, 1, g.OccupiedCount())
		assert.True(t, g.Occupied(C(2, 0)))
	}
}

func TestGridClearOnlyTouchedRows(t *testing.T) {
	g := NewGrid()
	fillRow(g, 5)

	p := placeAt(g, nil, ShapeO, 0, V(4.5, 0.5))
	g.MarkOccupancy(p, true)

	assert.Equal(t, 0, g.ClearFullRows(p))
	assert.Equal(t, BoardW, g.RowCount(5))
}

func TestGridClearNonAdjacentRows(t *testing.T) {
	g := NewGrid()
	fillRow(g, 0, 9)
	fillRow(g, 1, 8, 9)
	fillRow(g, 2, 9)

	// Row 1 stays one cell short, so only rows 0 and 2 clear.
	p := placeAt(g, nil, ShapeI, 1, V(8.5, 1.5))
	require.True(t, g.ValidatePiece(p))
	g.MarkOccupancy(p, true)

	assert.Equal(t, 2, g.ClearFullRows(p))
	assert.Equal(t, BoardW-1, g.RowCount(0), "old row 1 dropped to the floor")
	assert.True(t, g.Occupied(C(9, 0)))
	assert.False(t, g.Occupied(C(8, 0)))
	assert.True(t, g.Occupied(C(9, 1)), "piece block above cleared rows drops too")
	assert.Equal(t, BoardW, g.OccupiedCount())
}
