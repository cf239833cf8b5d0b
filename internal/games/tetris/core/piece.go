package core

import "time"

// DefaultLockDelay is the grace period between a failed fall and locking.
const DefaultLockDelay = 350 * time.Millisecond

// Host is the capability a piece holds on its owning session.
// The piece never owns the session; it only reports back through this.
type Host interface {
	// PieceMoved is called after every successful move or rotation.
	PieceMoved(p *Piece)
	// PieceLocked is called once the piece's blocks are committed to the
	// grid and full rows are cleared.
	PieceLocked(p *Piece, linesCleared int)
}

// Piece is an active tetrimino and its fall/lock state machine.
// The state machine is advanced only by Update, so locking cancels every
// pending timer simply by leaving the Falling/LockPending states.
type Piece struct {
	shape    Shape
	rotation int
	pos      Vec
	blocks   [4]*Block
	ghost    Vec

	grid *Grid
	host Host

	active   bool
	state    PieceState
	hasMoved bool
	kicked   bool // Whether the last successful rotation needed a wall kick

	timer        time.Duration // Time spent in the current state
	fallInterval time.Duration
	lockDelay    time.Duration
}

// NewPiece creates an unplaced piece of the given shape.
func NewPiece(shape Shape) *Piece {
	p := &Piece{shape: shape}
	for i := range p.blocks {
		p.blocks[i] = &Block{Shape: shape}
	}
	return p
}

// Shape returns the piece's shape.
func (p *Piece) Shape() Shape { return p.shape }

// Rotation returns the current rotation state (0-3).
func (p *Piece) Rotation() int { return p.rotation }

// Pos returns the rotation pivot position.
func (p *Piece) Pos() Vec { return p.pos }

// State returns the timing state.
func (p *Piece) State() PieceState { return p.state }

// Active reports whether the piece is currently in play.
func (p *Piece) Active() bool { return p.active }

// Kicked reports whether the last successful rotation used a wall kick.
func (p *Piece) Kicked() bool { return p.kicked }

// Blocks returns the piece's four blocks.
func (p *Piece) Blocks() [4]*Block { return p.blocks }

// FallInterval returns the delay between gravity steps.
func (p *Piece) FallInterval() time.Duration { return p.fallInterval }

// Positions returns the board positions of the four blocks.
func (p *Piece) Positions() [4]Vec {
	return p.positionsAt(p.pos)
}

func (p *Piece) positionsAt(anchor Vec) [4]Vec {
	offsets := Footprint(p.shape, p.rotation)
	var out [4]Vec
	for i, o := range offsets {
		out[i] = anchor.Add(o)
	}
	return out
}

// Ghost returns the pivot position the piece would land at if dropped now.
func (p *Piece) Ghost() Vec { return p.ghost }

// GhostPositions returns the block positions of the landing projection.
func (p *Piece) GhostPositions() [4]Vec {
	return p.positionsAt(p.ghost)
}

// place binds the piece to a grid and host at a spawn anchor, resetting
// rotation and timers. The piece is not active until activate is called.
func (p *Piece) place(g *Grid, h Host, anchor Vec, fallInterval, lockDelay time.Duration) {
	p.grid = g
	p.host = h
	p.pos = anchor
	p.rotation = 0
	p.state = StateFalling
	p.hasMoved = true
	p.kicked = false
	p.timer = 0
	p.fallInterval = fallInterval
	p.lockDelay = lockDelay
	p.active = false
}

// activate puts a placed piece into play and starts its fall timer.
func (p *Piece) activate() {
	p.active = true
	p.refreshGhost()
}

// deactivate takes the piece out of play without locking it.
func (p *Piece) deactivate() {
	p.active = false
	p.timer = 0
}

// Move translates the piece one cell. On a collision the move is reverted
// and false is returned.
func (p *Piece) Move(dir Direction) bool {
	if !p.active {
		return false
	}
	d := dir.Delta()
	p.pos = p.pos.Add(d)
	if !p.grid.ValidatePiece(p) {
		p.pos = p.pos.Sub(d)
		return false
	}
	p.moved()
	return true
}

// Rotate turns the piece a quarter turn. If the rotated footprint collides,
// the shape's kick candidates are tried in order; if none fits, rotation and
// position are restored and false is returned.
func (p *Piece) Rotate(clockwise bool) bool {
	if !p.active {
		return false
	}
	from := p.rotation
	start := p.pos

	p.rotation = NextRotation(from, clockwise)
	kicked := false
	ok := p.grid.ValidatePiece(p)
	if !ok {
		ok = p.wallKick(from, clockwise)
		kicked = ok
	}
	if !ok {
		p.rotation = from
		p.pos = start
		return false
	}

	p.kicked = kicked
	p.moved()
	return true
}

// wallKick walks the kick candidates for a rotation out of state from.
func (p *Piece) wallKick(from int, clockwise bool) bool {
	table := Kicks(p.shape)
	if table == nil {
		return false
	}
	start := p.pos
	for _, k := range table.Candidates(from, clockwise) {
		p.pos = p.pos.Add(k)
		if p.grid.ValidatePiece(p) {
			return true
		}
	}
	p.pos = start
	return false
}

// HardDrop moves the piece down until it collides, then locks it at once.
// Returns the number of rows dropped.
func (p *Piece) HardDrop() int {
	if !p.active {
		return 0
	}
	rows := 0
	for rows < BoardH && p.Move(DirDown) {
		rows++
	}
	p.lock()
	return rows
}

// Update advances the fall/lock state machine by dt.
//
// Falling: once fallInterval has elapsed the piece tries to move down; on
// failure it enters LockPending. LockPending: once lockDelay has elapsed the
// piece locks unless it moved or rotated in the meantime, in which case it
// returns to Falling. At most one transition happens per call.
func (p *Piece) Update(dt time.Duration) {
	if !p.active {
		return
	}
	p.timer += dt

	switch p.state {
	case StateFalling:
		if p.timer < p.fallInterval {
			return
		}
		p.timer = 0
		if p.Move(DirDown) {
			return
		}
		p.hasMoved = false
		p.state = StateLockPending

	case StateLockPending:
		if p.timer < p.lockDelay {
			return
		}
		p.timer = 0
		if p.hasMoved {
			p.state = StateFalling
			return
		}
		p.lock()
	}
}

// moved records a successful move or rotation.
func (p *Piece) moved() {
	p.hasMoved = true
	p.refreshGhost()
	if p.host != nil {
		p.host.PieceMoved(p)
	}
}

// refreshGhost projects the piece straight down to its landing position.
func (p *Piece) refreshGhost() {
	down := DirDown.Delta()
	g := p.pos
	for range BoardH {
		next := g.Add(down)
		if !p.grid.Validate(p.positionsAt(next)) {
			break
		}
		g = next
	}
	p.ghost = g
}

// lock commits the piece to the grid and hands control back to the host.
func (p *Piece) lock() {
	p.active = false
	p.state = StateLocked
	p.timer = 0
	p.grid.MarkOccupancy(p, true)
	lines := p.grid.ClearFullRows(p)
	if p.host != nil {
		p.host.PieceLocked(p, lines)
	}
}
