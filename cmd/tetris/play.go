package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

Controls:
  Left/Right, A/D   - Move
  Down, S           - Soft drop
  Space             - Hard drop
  Up, X             - Rotate clockwise
  Z                 - Rotate counter-clockwise
  C, Tab            - Hold
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Leave (when paused or game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at level 1, slower speed-up, 15 lines per level
  normal - Rules from the config file
  hard   - Start at level 5 with a shorter lock delay
  fixed  - The level never changes

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	logger, closer := newGameLogger()
	defer closer.Close()

	if err := tui.Run(tetris.New(), store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
