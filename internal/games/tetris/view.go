package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// flashTicks is how long a line-clear callout stays on screen.
const flashTicks = 60

// view mirrors the engine notifications the renderer needs that are not
// part of the session's own state.
type view struct {
	upcoming []core.Shape
	held     core.Shape
	hasHeld  bool

	clearedThisTick int
	callout         string
	calloutTicks    int
	lastPoints      int
	released        int // Blocks removed by clears since the last reset
}

func newView() *view {
	return &view{}
}

func (v *view) reset() {
	*v = view{}
}

// beginTick ages the callout and clears per-tick counters.
func (v *view) beginTick() {
	v.clearedThisTick = 0
	if v.calloutTicks > 0 {
		v.calloutTicks--
		if v.calloutTicks == 0 {
			v.callout = ""
		}
	}
}

func (v *view) PieceSpawned(*core.Piece)  {}
func (v *view) PieceMoved(*core.Piece)    {}
func (v *view) GhostDisposed(*core.Piece) {}
func (v *view) GameOver()                 {}

func (v *view) BlockReleased(*core.Block) {
	v.released++
}

func (v *view) LinesCleared(lines, points int) {
	v.clearedThisTick += lines
	v.lastPoints = points
	v.callout = clearName(lines)
	v.calloutTicks = flashTicks
}

func (v *view) QueueChanged(upcoming []core.Shape, held core.Shape, hasHeld bool) {
	v.upcoming = upcoming
	v.held = held
	v.hasHeld = hasHeld
}

// clearName returns the callout for a multi-row clear.
func clearName(lines int) string {
	switch lines {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	case 4:
		return "TETRIS!"
	default:
		return ""
	}
}

var _ core.Observer = (*view)(nil)
