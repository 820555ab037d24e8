package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
)

var flagSolveTimeout time.Duration

var solveCmd = &cobra.Command{
	Use:   "solve <level>",
	Short: "Print the shortest solution of a level",
	Long: `Search the level breadth-first and print the shortest sequence of
single-cell moves that brings the goal piece to the exit.

The search is bounded by gameplay.hint_max_states from the config.

Examples:
  klotski solve huarong-dao
  klotski solve huarong-dao --timeout 1m`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().DurationVar(&flagSolveTimeout, "timeout", 30*time.Second, "Give up after this long")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, lvls, err := loadLevelSet()
	if err != nil {
		return err
	}
	lvl, err := findLevel(lvls, args[0])
	if err != nil {
		return err
	}
	if lvl.Goal == nil {
		return fmt.Errorf("level %q has no goal", lvl.ID)
	}

	board, err := lvl.NewBoard()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagSolveTimeout)
	defer cancel()

	start := time.Now()
	moves, err := core.Solve(ctx, board, *lvl.Goal, core.SolveOptions{MaxStates: cfg.Gameplay.HintMaxStates})
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("no solution found within %s", flagSolveTimeout)
	case err != nil:
		return err
	}
	logger.Debug("search finished", "level", lvl.ID, "moves", len(moves), "elapsed", time.Since(start))

	fmt.Printf("%s (%s)\n\n", lvl.Name, lvl.ID)
	fmt.Println(board)
	fmt.Println()

	if len(moves) == 0 {
		fmt.Println("Already solved.")
		return nil
	}

	fmt.Printf("Shortest solution: %d moves\n\n", len(moves))
	for i, m := range moves {
		fmt.Printf("  %3d. %s\n", i+1, m)
	}
	return nil
}
