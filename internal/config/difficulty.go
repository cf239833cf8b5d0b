package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value into a preset.
// The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return "", nil
	}
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Level 1, slower speed-up, 15 lines per level"
	case DifficultyNormal:
		return "Classic rules from the config file"
	case DifficultyHard:
		return "Level 5, shorter lock delay"
	case DifficultyFixed:
		return "Level never changes"
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Normal (and no preset) keeps the loaded values.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartLevel = 1
		cfg.Scoring.LinesPerLevel = 15
		cfg.Scoring.SpeedStep = 0.03
	case DifficultyHard:
		cfg.Gameplay.StartLevel = 5
		cfg.Timing.LockDelay = 0.25
	case DifficultyFixed:
		cfg.Scoring.LinesPerLevel = 0
		if cfg.Gameplay.StartLevel < 1 {
			cfg.Gameplay.StartLevel = 1
		}
	}
}
