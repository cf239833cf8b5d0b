// Package core provides the rules engine for the falling-block puzzle:
// the occupancy grid, piece geometry and wall kicks, the active piece
// state machine, the 7-bag generator, and score/level tracking.
// This package is UI-agnostic and deterministic for a given seed.
package core

import (
	"fmt"
	"math"
)

// Board dimensions. The grid never changes size during a session.
const (
	BoardW = 10
	BoardH = 20
)

// Vec is a board-space position. Y increases upward; row 0 is the floor.
// Piece anchors for the I and O shapes sit on half cells, so positions are
// fractional and snapped to integer cells on every lookup.
type Vec struct {
	X float64
	Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v minus o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Snap rounds both axes to the nearest integer cell, half away from zero.
func (v Vec) Snap() Cell {
	return Cell{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Cell is an integer grid coordinate.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit translation for Move.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the unit vector for this direction.
func (d Direction) Delta() Vec {
	switch d {
	case DirLeft:
		return Vec{X: -1}
	case DirRight:
		return Vec{X: 1}
	case DirDown:
		return Vec{Y: -1}
	default:
		return Vec{}
	}
}

// PieceState is the active piece's timing state.
type PieceState uint8

const (
	StateFalling PieceState = iota
	StateLockPending
	StateLocked
)

// String returns the string representation of a piece state.
func (s PieceState) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateLockPending:
		return "lock_pending"
	case StateLocked:
		return "locked"
	default:
		return "unknown"
	}
}
