package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
	"github.com/vovakirdan/tui-klotski/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or pick one from the level list.

Controls:
  Arrows/WASD/hjkl  - Move cursor, or slide the grabbed piece
  Enter/Space       - Grab or release a piece
  Tab/Shift+Tab     - Jump to next/previous piece
  U/Backspace       - Undo
  ?                 - Hint
  R                 - Restart level
  N                 - Next level (after solving)
  P                 - Pause
  Q/Ctrl+C          - Quit

Examples:
  klotski play
  klotski play huarong-dao
  klotski play --difficulty easy
  klotski play --config ./my-klotski.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	_, lvls, err := loadLevelSet()
	if err != nil {
		return err
	}

	// Get terminal size early for the picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var levelID string
	if len(args) == 1 {
		lvl, findErr := findLevel(lvls, args[0])
		if findErr != nil {
			return findErr
		}
		levelID = lvl.ID
	} else {
		// Show level picker
		result, menuErr := tui.RunMenu(store, klotski.GameID, lvls, cfg)
		if menuErr != nil {
			return menuErr
		}
		cfg = result.Config

		// User pressed back, quit or asked for history
		if result.Quit || result.WantsHistory || result.LevelID == "" {
			return nil
		}
		levelID = result.LevelID
	}

	// Create game instance
	game, err := registry.Create(klotski.GameID)
	if err != nil {
		return err
	}

	cfg.Level = levelID
	logger.Debug("starting level", "level", levelID, "player", cfg.Player)

	if _, err := tui.Run(game, store, cfg, false); err != nil {
		return err
	}
	return nil
}
