package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			LockDelay:   0.35,
			InputRepeat: 0.085,
		},
		Scoring: TetrisScoring{
			LinePoints:    []int{0, 100, 300, 500, 800},
			LinesPerLevel: 10,
			BaseSpeed:     1.0,
			SpeedStep:     0.05,
		},
		Gameplay: TetrisGameplay{
			StartLevel: 0,
			Preview:    6,
			Ghost:      true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
