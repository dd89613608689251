package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/chase"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Maze Chase",
	Long: `Start playing immediately.

Controls:
  Arrows/WASD/hjkl  - Steer (turns are buffered until the way is open)
  P/Esc             - Pause
  R                 - Restart (after being caught)
  Q/Ctrl+C          - Quit

Examples:
  maze play
  maze play --level 3
  maze play --seed 7 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Starting level (1-based, wraps around the level list)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagLevel < 1 {
		return fmt.Errorf("invalid level %d: levels start at 1", flagLevel)
	}

	ledger, err := storage.Open()
	if err != nil {
		// The game still works without a ledger.
		logger.Warn("run ledger unavailable", "err", err)
		ledger = nil
	} else {
		defer ledger.Close()
	}

	// The start level is captured when the game is created.
	chase.SetStartLevel(flagLevel)
	game, err := registry.Create(chase.GameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	logger.Info("starting", "level", flagLevel, "seed", cfg.Seed, "fps", cfg.TickRate)

	if err := tui.Run(game, ledger, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
