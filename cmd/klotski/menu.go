package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
	"github.com/vovakirdan/tui-klotski/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the level picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a level is solved or paused, B/Esc returns to the picker.
Solved levels are marked with a check.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Solve history
  Q            - Quit

Examples:
  klotski menu
  klotski menu --difficulty hard
  klotski menu --db ./klotski.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	_, lvls, err := loadLevelSet()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, klotski.GameID, lvls, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, klotski.GameID, lvls, "", cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				logger.Error("history failed", "error", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		if menuResult.Quit || menuResult.LevelID == "" {
			break
		}

		game, err := registry.Create(klotski.GameID)
		if err != nil {
			logger.Error("cannot create game", "error", err)
			break
		}

		levelCfg := cfg
		levelCfg.Level = menuResult.LevelID
		goBack, err := tui.Run(game, store, levelCfg, true)
		if err != nil {
			logger.Error("game failed", "level", menuResult.LevelID, "error", err)
		}
		if !goBack {
			break
		}
	}
	return nil
}
