// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing   TetrisTiming   `yaml:"timing"`
	Scoring  TetrisScoring  `yaml:"scoring"`
	Gameplay TetrisGameplay `yaml:"gameplay"`
}

// TetrisTiming defines the piece timers. Values are in seconds.
type TetrisTiming struct {
	LockDelay   float64 `yaml:"lock_delay"`   // Grace period before a grounded piece locks
	InputRepeat float64 `yaml:"input_repeat"` // Minimum spacing of held-key repeats
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LinePoints    []int   `yaml:"line_points"`     // Points indexed by rows cleared at once (0-4)
	LinesPerLevel int     `yaml:"lines_per_level"` // 0 disables level-ups
	BaseSpeed     float64 `yaml:"base_speed"`      // Seconds per gravity step at level 0
	SpeedStep     float64 `yaml:"speed_step"`      // Seconds removed per level
}

// TetrisGameplay defines session options.
type TetrisGameplay struct {
	StartLevel int  `yaml:"start_level"`
	Preview    int  `yaml:"preview"` // Upcoming shapes shown
	Ghost      bool `yaml:"ghost"`   // Draw the landing projection
}

// MaxPreview is the longest preview the bag can always fill.
const MaxPreview = 7

// LockDelayDuration returns the lock delay as a duration.
func (c TetrisConfig) LockDelayDuration() time.Duration {
	return seconds(c.Timing.LockDelay)
}

// InputRepeatDuration returns the input repeat interval as a duration.
func (c TetrisConfig) InputRepeatDuration() time.Duration {
	return seconds(c.Timing.InputRepeat)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate reports every out-of-range value in the config.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Timing.LockDelay < 0 {
		errs = append(errs, fmt.Errorf("timing.lock_delay must be >= 0, got %v", c.Timing.LockDelay))
	}
	if c.Timing.InputRepeat < 0 {
		errs = append(errs, fmt.Errorf("timing.input_repeat must be >= 0, got %v", c.Timing.InputRepeat))
	}
	if n := len(c.Scoring.LinePoints); n != 5 {
		errs = append(errs, fmt.Errorf("scoring.line_points needs 5 entries (0-4 lines), got %d", n))
	}
	for i, p := range c.Scoring.LinePoints {
		if p < 0 {
			errs = append(errs, fmt.Errorf("scoring.line_points[%d] must be >= 0, got %d", i, p))
		}
	}
	if c.Scoring.LinesPerLevel < 0 {
		errs = append(errs, fmt.Errorf("scoring.lines_per_level must be >= 0, got %d", c.Scoring.LinesPerLevel))
	}
	if c.Scoring.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scoring.base_speed must be > 0, got %v", c.Scoring.BaseSpeed))
	}
	if c.Scoring.SpeedStep < 0 {
		errs = append(errs, fmt.Errorf("scoring.speed_step must be >= 0, got %v", c.Scoring.SpeedStep))
	}
	if c.Gameplay.StartLevel < 0 {
		errs = append(errs, fmt.Errorf("gameplay.start_level must be >= 0, got %d", c.Gameplay.StartLevel))
	}
	if c.Gameplay.Preview < 0 || c.Gameplay.Preview > MaxPreview {
		errs = append(errs, fmt.Errorf("gameplay.preview must be in [0, %d], got %d", MaxPreview, c.Gameplay.Preview))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
