package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
)

func menuLevels() []levels.Level {
	return []levels.Level{tinyLevel("first", 1), tinyLevel("second", 2), tinyLevel("third", 3)}
}

func updateMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func menuConfig(player string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Player = player
	return cfg
}

func TestMenuStartsOnFirstUnsolved(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordSolve(klotski.GameID, "first", "ann", 0); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, klotski.GameID, menuLevels(), menuConfig("ann"))
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().LevelID != "second" {
		t.Fatalf("selected = %+v, want second", m.Selected())
	}

	// Another player has solved nothing.
	m = NewMenuModel(store, klotski.GameID, menuLevels(), menuConfig("bob"))
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected().LevelID != "first" {
		t.Errorf("selected = %s, want first", m.Selected().LevelID)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, klotski.GameID, menuLevels(), menuConfig(""))

	m = updateMenu(t, m,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.Selected() == nil || m.Selected().LevelID != "third" {
		t.Fatalf("cursor should clamp at the last level, got %+v", m.Selected())
	}
}

func TestMenuHistoryAndQuit(t *testing.T) {
	m := NewMenuModel(nil, klotski.GameID, menuLevels(), menuConfig(""))
	if m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab}); !m.WantsHistory() {
		t.Error("tab should open the history")
	}

	m = NewMenuModel(nil, klotski.GameID, menuLevels(), menuConfig(""))
	if m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEsc}); !m.IsQuitting() {
		t.Error("esc should leave the menu")
	}
}

func TestMenuView(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordSolve(klotski.GameID, "second", "", 1); err != nil {
		t.Fatal(err)
	}
	m := NewMenuModel(store, klotski.GameID, menuLevels(), menuConfig(""))
	m = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, want := range []string{"K L O T S K I", "Level first", "Level third", "✓", "3x3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.Config().ScreenW != 100 {
		t.Errorf("config width = %d, want 100", m.Config().ScreenW)
	}

	empty := NewMenuModel(nil, klotski.GameID, nil, menuConfig(""))
	if !strings.Contains(empty.View(), "No levels available") {
		t.Error("empty menu should say so")
	}
}
