// Package tetris adapts the rules engine to the platform's Game interface:
// it maps input actions onto engine entry points, advances the engine clock
// by one tick per Step and renders the board into a screen buffer.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "tetris"

// Game implements the falling-block puzzle on top of the rules engine.
type Game struct {
	cfg     config.TetrisConfig
	preset  config.DifficultyPreset
	choice  config.DifficultyPreset // Per-instance preset, wins over the package default
	rng     *rand.Rand
	session *core.Session
	view    *view
	gate    *platformcore.RepeatGate

	tick  uint64
	clock time.Duration // Simulated time since the session started
	dt    time.Duration // Simulated time per Step

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty set from the CLI
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetPreset selects the difficulty for this instance only. It takes effect on
// the next Reset. Sessions served over SSH use this instead of the package
// default so that concurrent players do not share state.
func (g *Game) SetPreset(preset config.DifficultyPreset) {
	g.choice = preset
}

// New creates a new game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	preset := difficultyPreset
	if g.choice != "" {
		preset = g.choice
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.preset = preset
	if g.preset == "" {
		g.preset = config.DifficultyNormal
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = platformcore.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.gate = platformcore.NewRepeatGate(cfg.InputRepeatDuration())
	g.paused = false

	g.view = newView()
	g.session = core.NewSession(g.sessionRNG(), g.sessionOptions())
	g.tick = 0
	g.clock = 0
	g.checkScreenSize()
}

// sessionOptions converts the loaded config into engine options.
func (g *Game) sessionOptions() core.Options {
	rules := core.ScoreRules{
		LinesPerLevel: g.cfg.Scoring.LinesPerLevel,
		BaseSpeed:     g.cfg.Scoring.BaseSpeed,
		SpeedStep:     g.cfg.Scoring.SpeedStep,
	}
	copy(rules.LinePoints[:], g.cfg.Scoring.LinePoints)

	return core.Options{
		Rules:      rules,
		StartLevel: g.cfg.Gameplay.StartLevel,
		LockDelay:  g.cfg.LockDelayDuration(),
		Preview:    g.cfg.Gameplay.Preview,
		Observer:   g.view,
	}
}

// sessionRNG derives a fresh generator for one session from the game seed.
func (g *Game) sessionRNG() *rand.Rand {
	return rand.New(rand.NewSource(g.rng.Int63()))
}

// restart starts a new session with a fresh seed, keeping the config.
func (g *Game) restart() {
	g.view.reset()
	g.session.Restart(g.sessionRNG())
	g.gate.Reset()
	g.paused = false
	g.clock = 0
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board and side panels.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < MinWidth || g.screenH < MinHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.view.beginTick()

	// Only restart is accepted once the game is over
	if g.session.GameOver() {
		if in.Has(platformcore.ActionRestart) {
			g.restart()
		}
		return g.result()
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return g.result()
	}

	g.applyInput(in)
	g.session.Update(g.dt)
	g.clock += g.dt

	return g.result()
}

// applyInput feeds one frame of actions to the session. Hold is applied
// first so the rest of the frame acts on the piece that replaced it, and
// hard drop last so it sees every shift and rotation from the same frame.
func (g *Game) applyInput(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionHold) {
		g.session.Hold()
	}
	if in.Has(platformcore.ActionRotateCW) {
		g.session.Rotate(true)
	}
	if in.Has(platformcore.ActionRotateCCW) {
		g.session.Rotate(false)
	}
	if g.fire(in, platformcore.ActionLeft) {
		g.session.Move(core.DirLeft)
	}
	if g.fire(in, platformcore.ActionRight) {
		g.session.Move(core.DirRight)
	}
	if g.fire(in, platformcore.ActionSoftDrop) {
		g.session.Move(core.DirDown)
	}
	if in.Has(platformcore.ActionHardDrop) {
		g.session.HardDrop()
	}
}

// fire reports whether a repeatable action present in the frame passes the
// repeat gate.
func (g *Game) fire(in platformcore.InputFrame, a platformcore.Action) bool {
	return in.Has(a) && g.gate.Allow(a, g.clock)
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{
		State:   g.State(),
		Cleared: g.view.clearedThisTick,
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	score := g.session.Score()
	return platformcore.GameState{
		Score:    score.Score(),
		Lines:    score.Lines(),
		Level:    score.Level(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Run summarizes the current session for persistence.
type Run struct {
	Preset   config.DifficultyPreset
	Score    int
	Lines    int
	Level    int
	Pieces   int
	Duration time.Duration
}

// Run returns the current session's totals.
func (g *Game) Run() Run {
	score := g.session.Score()
	return Run{
		Preset:   g.preset,
		Score:    score.Score(),
		Lines:    score.Lines(),
		Level:    score.Level(),
		Pieces:   g.session.Spawned(),
		Duration: g.clock,
	}
}
