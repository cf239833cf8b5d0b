package core

import (
	"math"
	"time"
)

// ScoreRules parameterizes scoring and level progression.
type ScoreRules struct {
	LinePoints    [5]int  // Base points indexed by rows cleared at once (0-4)
	LinesPerLevel int     // Lines needed per level-up; 0 disables leveling
	BaseSpeed     float64 // Seconds per gravity step at level 0
	SpeedStep     float64 // Seconds removed per level
}

// DefaultScoreRules returns the classic 100/300/500/800 table with a level
// every 10 lines and a 0.05s speed-up per level.
func DefaultScoreRules() ScoreRules {
	return ScoreRules{
		LinePoints:    [5]int{0, 100, 300, 500, 800},
		LinesPerLevel: 10,
		BaseSpeed:     1.0,
		SpeedStep:     0.05,
	}
}

// Tracker accumulates score, cleared lines and level.
// Points are multiplied by the current level, so a session that starts at
// level 0 scores nothing until its first level-up.
type Tracker struct {
	rules      ScoreRules
	score      int
	lines      int
	levelLines int // Lines cleared toward the next level
	level      int
	speed      float64
}

// NewTracker creates a tracker starting at the given level.
func NewTracker(rules ScoreRules, startLevel int) *Tracker {
	if startLevel < 0 {
		startLevel = 0
	}
	t := &Tracker{
		rules: rules,
		level: startLevel,
	}
	t.speed = t.speedFor(startLevel)
	return t
}

// ReportLinesCleared awards points for n rows cleared by one lock and
// advances level progress. Returns the points awarded.
func (t *Tracker) ReportLinesCleared(n int) int {
	points := 0
	if n > 0 && n < len(t.rules.LinePoints) {
		points = t.rules.LinePoints[n] * t.level
	}
	t.score += points

	if n <= 0 {
		return points
	}
	t.lines += n
	t.levelLines += n
	if t.rules.LinesPerLevel <= 0 {
		return points
	}
	for t.levelLines >= t.rules.LinesPerLevel {
		t.levelLines -= t.rules.LinesPerLevel
		t.level++
		t.speed = t.speedFor(t.level)
	}
	return points
}

// speedFor returns the gravity interval in seconds for a level, never negative.
func (t *Tracker) speedFor(level int) float64 {
	return math.Max(0, t.rules.BaseSpeed-float64(level)*t.rules.SpeedStep)
}

// Score returns the cumulative score.
func (t *Tracker) Score() int { return t.score }

// Lines returns the cumulative number of cleared lines.
func (t *Tracker) Lines() int { return t.lines }

// Level returns the current level.
func (t *Tracker) Level() int { return t.level }

// LevelProgress returns lines cleared toward the next level.
func (t *Tracker) LevelProgress() int { return t.levelLines }

// Speed returns the game speed scalar (seconds per gravity step).
func (t *Tracker) Speed() float64 { return t.speed }

// FallInterval returns Speed as a duration.
func (t *Tracker) FallInterval() time.Duration {
	return time.Duration(t.speed * float64(time.Second))
}
