package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"list", "play", "menu", "solve", "history", "serve", "config"}
	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCommandsReturnErrors(t *testing.T) {
	flagDBPath = filepath.Join(t.TempDir(), "klotski.db")
	t.Cleanup(func() { flagDBPath = "~/.klotski/klotski.db" })

	err := runHistory(historyCmd, []string{"no-such-level"})
	if err == nil || !strings.Contains(err.Error(), "unknown level") {
		t.Errorf("runHistory() error = %v, want unknown level", err)
	}

	err = runSolve(solveCmd, []string{"no-such-level"})
	if err == nil || !strings.Contains(err.Error(), "unknown level") {
		t.Errorf("runSolve() error = %v, want unknown level", err)
	}
}

func TestHistoryClearOnFreshLog(t *testing.T) {
	flagDBPath = filepath.Join(t.TempDir(), "klotski.db")
	t.Cleanup(func() { flagDBPath = "~/.klotski/klotski.db" })
	flagHistoryClear = true
	t.Cleanup(func() { flagHistoryClear = false })

	if err := runHistory(historyCmd, nil); err != nil {
		t.Fatalf("runHistory() error = %v", err)
	}
}
