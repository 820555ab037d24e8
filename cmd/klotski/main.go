// klotski is a sliding-block puzzle for the terminal.
//
// Usage:
//
//	klotski list                 - List available levels
//	klotski play [level]         - Play a level (picker when omitted)
//	klotski menu                 - Level picker loop with solve history
//	klotski solve <level>        - Print the shortest solution
//	klotski history [level]      - Show logged solves
//	klotski serve                - Start SSH server for remote play
//	klotski config [--init]      - Show or create the config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--db <path>           - Set database path (default: ~/.klotski/klotski.db)
//	--config <path>       - Use a custom klotski.yaml
//	--difficulty <level>  - Restrict levels to easy, normal or hard
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/config"
	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "klotski",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "klotski",
	Short: "Klotski - Slide the blocks in your terminal",
	Long: `Klotski is the classic sliding-block puzzle for the terminal.
Slide the pieces one cell at a time until the big block reaches the exit.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  solve    - Print the shortest solution of a level
  history  - View logged solves
  serve    - Start SSH server for remote play
  config   - Show or create the config file

Examples:
  klotski list --difficulty easy
  klotski play huarong-dao
  klotski menu
  klotski solve huarong-dao
  klotski serve --ssh :2222`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		klotski.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.klotski/klotski.db", "Path to solve log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom klotski.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty filter: easy, normal, hard, all")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadLevelSet resolves the config file and difficulty flag into the
// level set every command works on.
func loadLevelSet() (config.KlotskiConfig, []levels.Level, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.KlotskiConfig{}, nil, err
	}
	klotski.SetDifficultyPreset(preset)

	cfg, err := config.LoadKlotski(flagConfig)
	if err != nil {
		return config.KlotskiConfig{}, nil, err
	}
	logger.Debug("config loaded", "levels_dir", cfg.Levels.Dir, "hints", cfg.Gameplay.Hints)

	lvls := klotski.LoadLevels(cfg, preset)
	logger.Debug("levels loaded", "count", len(lvls), "difficulty", preset)
	return cfg, lvls, nil
}

// findLevel returns the level with the given ID.
func findLevel(lvls []levels.Level, id string) (levels.Level, error) {
	for _, lvl := range lvls {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return levels.Level{}, fmt.Errorf("unknown level %q (run 'klotski list' to see available levels)", id)
}

// openStore opens the solve log. Failure is not fatal: the puzzle works
// without it, solves just go unrecorded.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solve log", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// player names the local user in the solve log.
func player() string {
	for _, env := range []string{"KLOTSKI_PLAYER", "USER", "USERNAME"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// runtimeConfig builds the config for the current terminal.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Player:   player(),
	}
}
