package core

import (
	"math/rand"
	"time"
)

// Observer receives notifications for everything a view needs to mirror.
// Implementations must not call back into the session.
type Observer interface {
	// PieceSpawned is called when a piece enters play.
	PieceSpawned(p *Piece)
	// PieceMoved is called after each successful move or rotation, once the
	// ghost has been recomputed.
	PieceMoved(p *Piece)
	// GhostDisposed is called when a piece leaves play by locking or holding.
	GhostDisposed(p *Piece)
	// BlockReleased is called for each locked block removed by a row clear.
	BlockReleased(b *Block)
	// LinesCleared is called when a lock clears one or more rows.
	LinesCleared(lines, points int)
	// QueueChanged is called with the upcoming shapes and hold slot whenever
	// either changes.
	QueueChanged(upcoming []Shape, held Shape, hasHeld bool)
	// GameOver is called once when a spawn collides.
	GameOver()
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) PieceSpawned(*Piece)               {}
func (NopObserver) PieceMoved(*Piece)                 {}
func (NopObserver) GhostDisposed(*Piece)              {}
func (NopObserver) BlockReleased(*Block)              {}
func (NopObserver) LinesCleared(int, int)             {}
func (NopObserver) QueueChanged([]Shape, Shape, bool) {}
func (NopObserver) GameOver()                         {}

// DefaultPreview is the number of upcoming shapes reported to the view.
const DefaultPreview = 6

// Options configures a session.
type Options struct {
	Rules      ScoreRules
	StartLevel int
	LockDelay  time.Duration
	Preview    int
	Observer   Observer
}

// DefaultOptions returns the standard rule set.
func DefaultOptions() Options {
	return Options{
		Rules:     DefaultScoreRules(),
		LockDelay: DefaultLockDelay,
		Preview:   DefaultPreview,
	}
}

// Session owns the grid, the bag, the score tracker, the hold slot and the
// single active piece. Move, Rotate, HardDrop, Hold and Update are the only
// mutation entry points; none of them is safe for concurrent use.
type Session struct {
	opts     Options
	observer Observer

	grid   *Grid
	bag    *Bag
	score  *Tracker
	active *Piece
	held   *Piece

	canHold  bool
	gameOver bool
	nextID   uint64
	spawned  int
}

// NewSession creates a session and spawns its first piece.
func NewSession(rng *rand.Rand, opts Options) *Session {
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	// Zero is a real setting for both: an instant lock and no preview.
	opts.LockDelay = max(opts.LockDelay, 0)
	opts.Preview = max(opts.Preview, 0)
	s := &Session{
		opts:     opts,
		observer: opts.Observer,
	}
	s.Restart(rng)
	return s
}

// Restart discards all state and starts a fresh game.
func (s *Session) Restart(rng *rand.Rand) {
	s.grid = NewGrid()
	s.grid.SetReleaseHook(s.observer.BlockReleased)
	s.bag = NewBag(rng)
	s.score = NewTracker(s.opts.Rules, s.opts.StartLevel)
	s.active = nil
	s.held = nil
	s.canHold = true
	s.gameOver = false
	s.spawned = 0
	s.spawnNext(nil)
}

// Grid returns the board.
func (s *Session) Grid() *Grid { return s.grid }

// Score returns the score tracker.
func (s *Session) Score() *Tracker { return s.score }

// Active returns the piece in play, or nil.
func (s *Session) Active() *Piece { return s.active }

// Held returns the shape in the hold slot.
func (s *Session) Held() (Shape, bool) {
	if s.held == nil {
		return 0, false
	}
	return s.held.shape, true
}

// CanHold reports whether the hold gate is open.
func (s *Session) CanHold() bool { return s.canHold }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Spawned returns the number of pieces that entered play.
func (s *Session) Spawned() int { return s.spawned }

// Upcoming returns the next shapes as shown in the preview.
func (s *Session) Upcoming() []Shape {
	return s.bag.Upcoming(s.opts.Preview)
}

// Move translates the active piece one cell.
func (s *Session) Move(dir Direction) bool {
	if !s.playable() {
		return false
	}
	return s.active.Move(dir)
}

// Rotate turns the active piece a quarter turn, with wall kicks.
func (s *Session) Rotate(clockwise bool) bool {
	if !s.playable() {
		return false
	}
	return s.active.Rotate(clockwise)
}

// HardDrop drops and locks the active piece. Returns rows dropped.
func (s *Session) HardDrop() int {
	if !s.playable() {
		return 0
	}
	return s.active.HardDrop()
}

// Hold swaps the active piece into the hold slot. Only one hold is allowed
// per lock; a second attempt is rejected without changing state.
func (s *Session) Hold() bool {
	if !s.playable() || !s.canHold {
		return false
	}
	current := s.active
	s.canHold = false
	s.active = nil
	current.deactivate()
	s.observer.GhostDisposed(current)

	previous := s.held
	s.held = current
	if !s.spawnNext(previous) {
		s.notifyQueue()
	}
	return true
}

// Update advances the active piece's timers.
func (s *Session) Update(dt time.Duration) {
	if !s.playable() {
		return
	}
	s.active.Update(dt)
}

func (s *Session) playable() bool {
	return !s.gameOver && s.active != nil
}

// PieceMoved implements Host.
func (s *Session) PieceMoved(p *Piece) {
	s.observer.PieceMoved(p)
}

// PieceLocked implements Host.
func (s *Session) PieceLocked(p *Piece, linesCleared int) {
	if s.active == p {
		s.active = nil
	}
	s.observer.GhostDisposed(p)
	points := s.score.ReportLinesCleared(linesCleared)
	if linesCleared > 0 {
		s.observer.LinesCleared(linesCleared, points)
	}
	s.spawnNext(nil)
	s.canHold = true
}

// spawnNext puts a piece into play at the spawn cell: the held piece when
// one is given, otherwise the head of the bag. A collision at the spawn
// cell ends the game instead. Returns whether a piece was spawned.
func (s *Session) spawnNext(existing *Piece) bool {
	p := existing
	fromBag := p == nil
	if fromBag {
		p = s.newPiece(s.bag.Peek())
	}

	anchor := SpawnCell.Add(SpawnOffset(p.shape))
	p.place(s.grid, s, anchor, s.score.FallInterval(), s.opts.LockDelay)

	if !s.grid.ValidatePiece(p) {
		s.endGame()
		return false
	}

	if fromBag {
		s.bag.Next()
	}
	s.active = p
	s.spawned++
	p.activate()
	s.observer.PieceSpawned(p)
	s.notifyQueue()
	return true
}

// newPiece creates a piece with fresh block handles.
func (s *Session) newPiece(shape Shape) *Piece {
	p := NewPiece(shape)
	for _, b := range p.blocks {
		s.nextID++
		b.ID = s.nextID
	}
	return p
}

func (s *Session) endGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.active = nil
	s.observer.GameOver()
}

func (s *Session) notifyQueue() {
	held, ok := s.Held()
	s.observer.QueueChanged(s.Upcoming(), held, ok)
}
