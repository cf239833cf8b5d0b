package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Level    int
	Active   string // Shape letter, empty when no piece is in play
	Rotation int
	Kicked   bool // Last rotation of the active piece needed a wall kick
	Pos      core.Vec
	Ghost    core.Vec
	Held     string
	CanHold  bool
	Upcoming string
	Board    [core.BoardH]string // Top row first; '.' marks an empty cell
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	score := g.session.Score()
	snap := Snapshot{
		Tick:     g.tick,
		Score:    score.Score(),
		Lines:    score.Lines(),
		Level:    score.Level(),
		CanHold:  g.session.CanHold(),
		Upcoming: shapeString(g.session.Upcoming()),
		State:    state,
	}
	if p := g.session.Active(); p != nil {
		snap.Active = p.Shape().String()
		snap.Rotation = p.Rotation()
		snap.Kicked = p.Kicked()
		snap.Pos = p.Pos()
		snap.Ghost = p.Ghost()
	}
	if held, ok := g.session.Held(); ok {
		snap.Held = held.String()
	}

	grid := g.session.Grid()
	for row := range core.BoardH {
		y := core.BoardH - 1 - row
		var sb strings.Builder
		for x := range core.BoardW {
			if b := grid.At(core.C(x, y)); b != nil {
				sb.WriteString(b.Shape.String())
			} else {
				sb.WriteByte('.')
			}
		}
		snap.Board[row] = sb.String()
	}
	return snap
}

func shapeString(shapes []core.Shape) string {
	var sb strings.Builder
	for _, s := range shapes {
		sb.WriteString(s.String())
	}
	return sb.String()
}
