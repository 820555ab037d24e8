package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
)

func updateHistory(t *testing.T, m HistoryModel, msgs ...tea.Msg) HistoryModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(HistoryModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestHistoryFilters(t *testing.T) {
	store := openStore(t)
	for _, s := range []struct {
		level string
		hints int
	}{{"first", 0}, {"first", 2}, {"third", 0}} {
		if _, err := store.RecordSolve(klotski.GameID, s.level, "ann", s.hints); err != nil {
			t.Fatal(err)
		}
	}

	m := NewHistoryModel(store, klotski.GameID, menuLevels(), "", 100, 30)
	if got := len(m.Solves()); got != 3 {
		t.Fatalf("all levels: got %d solves, want 3", got)
	}

	m = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := len(m.Solves()); got != 2 {
		t.Errorf("first: got %d solves, want 2", got)
	}

	m = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := len(m.Solves()); got != 0 {
		t.Errorf("second: got %d solves, want 0", got)
	}
	if !strings.Contains(m.View(), "No solves recorded yet") {
		t.Error("empty level should show the placeholder")
	}

	// Wraps from the first entry to the last level.
	m = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := len(m.Solves()); got != 1 || m.Solves()[0].LevelID != "third" {
		t.Errorf("third: got %+v", m.Solves())
	}
}

func TestHistoryStartLevelAndStats(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordSolve(klotski.GameID, "second", "bob", 0); err != nil {
		t.Fatal(err)
	}

	m := NewHistoryModel(store, klotski.GameID, menuLevels(), "second", 60, 24)
	if got := len(m.Solves()); got != 1 {
		t.Fatalf("got %d solves, want 1", got)
	}
	view := m.View()
	if !strings.Contains(view, "Level second") {
		t.Error("view should name the selected level")
	}
	if !strings.Contains(view, "Solved 1 times by 1 players, 1 without hints") {
		t.Errorf("view missing stats line:\n%s", view)
	}
}

func TestHistoryBackAndQuit(t *testing.T) {
	m := NewHistoryModel(nil, klotski.GameID, menuLevels(), "", 80, 24)
	if m = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyEsc}); !m.IsGoingBack() {
		t.Error("esc should go back")
	}

	m = NewHistoryModel(nil, klotski.GameID, menuLevels(), "", 80, 24)
	if m = updateHistory(t, m, runeKey('q')); !m.IsQuitting() {
		t.Error("q should quit")
	}
}
