package core

// Shape identifies one of the seven tetrimino kinds.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of distinct shapes.
const ShapeCount = 7

// AllShapes lists every shape in canonical order.
var AllShapes = [ShapeCount]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s < ShapeCount
}

// baseOffsets are block offsets from the rotation pivot in rotation state 0.
// I and O rotate about a cell corner, so their offsets sit on half cells.
var baseOffsets = [ShapeCount][4]Vec{
	ShapeI: {{-1.5, 0.5}, {-0.5, 0.5}, {0.5, 0.5}, {1.5, 0.5}},
	ShapeJ: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeL: {{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeO: {{-0.5, 0.5}, {0.5, 0.5}, {-0.5, -0.5}, {0.5, -0.5}},
	ShapeS: {{0, 1}, {1, 1}, {-1, 0}, {0, 0}},
	ShapeT: {{0, 1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
}

// footprints[shape][rotation] holds the four block offsets for each state.
var footprints [ShapeCount][4][4]Vec

func init() {
	for s := range ShapeCount {
		offsets := baseOffsets[s]
		for r := range 4 {
			footprints[s][r] = offsets
			for i, o := range offsets {
				offsets[i] = rotateCW(o)
			}
		}
	}
}

// rotateCW turns an offset a quarter turn clockwise about the origin.
func rotateCW(v Vec) Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// Footprint returns the four block offsets of a shape in the given rotation state.
func Footprint(s Shape, rotation int) [4]Vec {
	return footprints[s][wrapRotation(rotation)]
}

// SpawnOffset is the centering adjustment applied to the canonical spawn cell.
// The O and I shapes pivot on a cell corner and need a half-cell shift.
func SpawnOffset(s Shape) Vec {
	switch s {
	case ShapeO:
		return Vec{X: 0.5, Y: 0.5}
	case ShapeI:
		return Vec{X: 0.5, Y: -0.5}
	default:
		return Vec{}
	}
}

// SpawnCell is the canonical spawn anchor before the shape's SpawnOffset.
var SpawnCell = Vec{X: 4, Y: 18}

// NextRotation returns the rotation state after a quarter turn.
// Clockwise advances the state; counter-clockwise walks it back.
func NextRotation(rotation int, clockwise bool) int {
	if clockwise {
		return wrapRotation(rotation + 1)
	}
	return wrapRotation(rotation - 1)
}

func wrapRotation(r int) int {
	return ((r % 4) + 4) % 4
}

// KickAttempts is the number of kick candidates tried per rotation.
const KickAttempts = 4

// KickTable holds kick candidates for the eight (rotation state, direction)
// pairs. Candidates are cumulative: each one is applied on top of the
// position left by the previous, and the piece keeps the first valid result.
type KickTable [8][KickAttempts]Vec

// KickKey maps a pre-rotation state and direction onto a table row.
func KickKey(rotation int, clockwise bool) int {
	key := wrapRotation(rotation) * 2
	if clockwise {
		key++
	}
	return key
}

// Candidates returns the kick sequence for a rotation from the given state.
func (t *KickTable) Candidates(rotation int, clockwise bool) [KickAttempts]Vec {
	return t[KickKey(rotation, clockwise)]
}

// sharedKicks is used by J, L, S, T and Z.
var sharedKicks = KickTable{
	{{1, 0}, {0, 1}, {-1, -3}, {1, 0}},  // 0 -> 3
	{{-1, 0}, {0, 1}, {1, -3}, {-1, 0}}, // 0 -> 1
	{{1, 0}, {0, -1}, {-1, 3}, {1, 0}},  // 1 -> 0
	{{1, 0}, {0, -1}, {-1, 3}, {1, 0}},  // 1 -> 2
	{{-1, 0}, {0, 1}, {1, -3}, {-1, 0}}, // 2 -> 1
	{{1, 0}, {0, 1}, {-1, -3}, {1, 0}},  // 2 -> 3
	{{-1, 0}, {0, -1}, {1, 3}, {-1, 0}}, // 3 -> 2
	{{-1, 0}, {0, -1}, {1, 3}, {-1, 0}}, // 3 -> 0
}

// iKicks is used only by the I shape.
var iKicks = KickTable{
	{{-1, 0}, {3, 0}, {-3, 2}, {3, -3}}, // 0 -> 3
	{{-2, 0}, {3, 0}, {-3, -1}, {3, 3}}, // 0 -> 1
	{{2, 0}, {-3, 0}, {3, 1}, {-3, -3}}, // 1 -> 0
	{{-1, 0}, {3, 0}, {-3, 2}, {3, -3}}, // 1 -> 2
	{{1, 0}, {-3, 0}, {3, -2}, {-3, 3}}, // 2 -> 1
	{{2, 0}, {-3, 0}, {3, 1}, {-3, -3}}, // 2 -> 3
	{{-2, 0}, {3, 0}, {-3, -1}, {3, 3}}, // 3 -> 2
	{{1, 0}, {-3, 0}, {3, -2}, {-3, 3}}, // 3 -> 0
}

// Kicks returns the kick table for a shape, or nil for the O shape,
// whose footprint is identical in every rotation state.
func Kicks(s Shape) *KickTable {
	switch s {
	case ShapeO:
		return nil
	case ShapeI:
		return &iKicks
	default:
		return &sharedKicks
	}
}
