package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels plus those found in the configured level directory.

Examples:
  klotski list
  klotski list --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	_, lvls, err := loadLevelSet()
	if err != nil {
		return err
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, lvl := range lvls {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len([]rune(lvl.Name)))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Difficulty", "Size")
	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, "--", maxNameLen, "----", "----------", "----")

	for _, lvl := range lvls {
		size := fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height())
		fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, lvl.ID, maxNameLen, lvl.Name, lvl.Difficulty, size)
	}

	fmt.Println()
	fmt.Println("Run 'klotski play <id>' to play a level.")
	return nil
}
