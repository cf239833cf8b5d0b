package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if want := DefaultTetrisConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadTetrisFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadTetrisUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("gameplay:\n  preview: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Gameplay.Preview != 3 {
		t.Errorf("Preview = %d, want 3", cfg.Gameplay.Preview)
	}
}

func TestLoadTetrisPartialFile(t *testing.T) {
	path := writeConfig(t, `
timing:
  lock_delay: 0.5
gameplay:
  start_level: 4
  ghost: false
`)
	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}

	if cfg.LockDelayDuration() != 500*time.Millisecond {
		t.Errorf("LockDelay = %v, want 500ms", cfg.LockDelayDuration())
	}
	if cfg.Gameplay.StartLevel != 4 || cfg.Gameplay.Ghost {
		t.Errorf("Gameplay = %+v, want start 4 without ghost", cfg.Gameplay)
	}
	// Omitted keys keep their defaults
	if cfg.InputRepeatDuration() != 85*time.Millisecond {
		t.Errorf("InputRepeat = %v, want 85ms", cfg.InputRepeatDuration())
	}
	if cfg.Scoring.LinesPerLevel != 10 || len(cfg.Scoring.LinePoints) != 5 {
		t.Errorf("Scoring = %+v, want defaults", cfg.Scoring)
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: "failed to read config",
		},
		{
			name:    "bad yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "timing: [oops") },
			wantErr: "failed to parse config",
		},
		{
			name:    "out of range",
			path:    func(t *testing.T) string { return writeConfig(t, "gameplay:\n  preview: 12\n") },
			wantErr: "gameplay.preview",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTetris(tt.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr string
	}{
		{"negative lock delay", func(c *TetrisConfig) { c.Timing.LockDelay = -1 }, "timing.lock_delay"},
		{"negative repeat", func(c *TetrisConfig) { c.Timing.InputRepeat = -0.1 }, "timing.input_repeat"},
		{"short point table", func(c *TetrisConfig) { c.Scoring.LinePoints = []int{0, 100} }, "scoring.line_points"},
		{"negative points", func(c *TetrisConfig) { c.Scoring.LinePoints[2] = -5 }, "line_points[2]"},
		{"zero base speed", func(c *TetrisConfig) { c.Scoring.BaseSpeed = 0 }, "scoring.base_speed"},
		{"negative speed step", func(c *TetrisConfig) { c.Scoring.SpeedStep = -1 }, "scoring.speed_step"},
		{"negative lines per level", func(c *TetrisConfig) { c.Scoring.LinesPerLevel = -1 }, "lines_per_level"},
		{"negative start level", func(c *TetrisConfig) { c.Gameplay.StartLevel = -1 }, "start_level"},
		{"preview too long", func(c *TetrisConfig) { c.Gameplay.Preview = MaxPreview + 1 }, "gameplay.preview"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Timing.LockDelay = -1
	cfg.Gameplay.Preview = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"lock_delay", "preview"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		startLevel    int
		linesPerLevel int
		lockDelay     float64
	}{
		{DifficultyEasy, 1, 15, 0.35},
		{DifficultyNormal, 0, 10, 0.35},
		{DifficultyHard, 5, 10, 0.25},
		{DifficultyFixed, 1, 0, 0.35},
		{"", 0, 10, 0.35},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)
			if cfg.Gameplay.StartLevel != tt.startLevel {
				t.Errorf("StartLevel = %d, want %d", cfg.Gameplay.StartLevel, tt.startLevel)
			}
			if cfg.Scoring.LinesPerLevel != tt.linesPerLevel {
				t.Errorf("LinesPerLevel = %d, want %d", cfg.Scoring.LinesPerLevel, tt.linesPerLevel)
			}
			if cfg.Timing.LockDelay != tt.lockDelay {
				t.Errorf("LockDelay = %v, want %v", cfg.Timing.LockDelay, tt.lockDelay)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate: %v", err)
			}
		})
	}
}

func TestFixedPresetKeepsHigherStartLevel(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gameplay.StartLevel = 8
	ApplyTetrisPreset(&cfg, DifficultyFixed)
	if cfg.Gameplay.StartLevel != 8 {
		t.Errorf("StartLevel = %d, want 8", cfg.Gameplay.StartLevel)
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset mismatch")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"FIXED", DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	for _, p := range Presets {
		if p.Description() == "" {
			t.Errorf("preset %q has no description", p)
		}
	}
}
