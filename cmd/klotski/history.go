package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show logged solves",
	Long: `Display the most recent solves, for every level or for one.

Examples:
  klotski history
  klotski history huarong-dao --limit 50
  klotski history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of solves to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every logged solve")
}

func runHistory(_ *cobra.Command, args []string) error {
	_, lvls, err := loadLevelSet()
	if err != nil {
		return err
	}

	var levelID string
	if len(args) == 1 {
		lvl, findErr := findLevel(lvls, args[0])
		if findErr != nil {
			return findErr
		}
		levelID = lvl.ID
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening solve log: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSolves(klotski.GameID); err != nil {
			return err
		}
		fmt.Println("Solve history cleared.")
		return nil
	}

	var solves []storage.SolveEntry
	if levelID != "" {
		solves, err = store.LevelSolves(klotski.GameID, levelID, flagHistoryLimit)
	} else {
		solves, err = store.RecentSolves(klotski.GameID, flagHistoryLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving solves: %w", err)
	}

	title := "all levels"
	if levelID != "" {
		title = levelID
	}
	fmt.Printf("Solve history - %s\n\n", title)

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Play 'klotski menu' and solve a level to log it here!")
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-12s  %-5s  %s\n", "#", "Level", "Player", "Hints", "Date")
	fmt.Printf("  %-4s  %-20s  %-12s  %-5s  %s\n", "-", "-----", "------", "-----", "----")
	for i, s := range solves {
		name := s.Player
		if name == "" {
			name = "-"
		}
		fmt.Printf("  %-4d  %-20s  %-12s  %-5d  %s\n", i+1, s.LevelID, name, s.HintsUsed, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.LevelStats(klotski.GameID)
	if err != nil {
		logger.Warn("could not compute stats", "error", err)
		return nil
	}
	fmt.Println()
	if levelID != "" {
		if st, ok := stats[levelID]; ok {
			fmt.Printf("Solved %d times by %d players, %d without hints.\n", st.Solves, st.Players, st.CleanSolves)
		}
		return nil
	}
	fmt.Printf("Levels solved: %d of %d\n", len(stats), len(lvls))
	return nil
}
