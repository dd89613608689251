package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/chase"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a starting level, play, and compare session scores",
	Long: `Start in interactive menu mode.

Pick a starting level with the arrow keys or j/k and press Enter.
When you quit a run you return to the menu. Tab shows the scores of
every run in this session; they are kept in memory only.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play from the selected level
  Tab          - Session scores
  Q            - Quit

Examples:
  maze menu
  maze menu --levels-dir ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	ledger, err := storage.Open()
	if err != nil {
		return fmt.Errorf("opening run ledger: %w", err)
	}
	defer ledger.Close()

	cfg := runtimeConfig()
	names := chase.LevelNames()
	title := chase.GameID
	for _, info := range registry.List() {
		if info.ID == chase.GameID {
			title = info.Title
		}
	}

	for {
		res, err := tui.RunMenu(chase.GameID, names, ledger, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(chase.GameID, title, ledger, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		chase.SetStartLevel(res.Level)
		game, err := registry.Create(chase.GameID)
		if err != nil {
			return err
		}
		logger.Info("starting", "level", res.Level, "seed", cfg.Seed, "fps", cfg.TickRate)
		if err := tui.Run(game, ledger, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
