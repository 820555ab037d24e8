package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		level  string
		player string
		hints  int
	}{
		{"warm-up", "alice", 0},
		{"side-step", "alice", 2},
		{"warm-up", "bob", 1},
	} {
		if _, err := store.RecordSolve("klotski", s.level, s.player, s.hints); err != nil {
			t.Fatalf("RecordSolve() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.RecordSolve("other", "warm-up", "alice", 0); err != nil {
		t.Fatalf("RecordSolve() failed: %v", err)
	}

	entries, err := store.RecentSolves("klotski", 10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(entries))
	}

	// Same-second inserts fall back to id order, newest first
	if entries[0].Player != "bob" || entries[0].LevelID != "warm-up" || entries[0].HintsUsed != 1 {
		t.Errorf("unexpected newest entry: %+v", entries[0])
	}
	if entries[2].Player != "alice" || !entries[2].Clean() {
		t.Errorf("unexpected oldest entry: %+v", entries[2])
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreRecordRequiresLevel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecordSolve("klotski", "", "alice", 0); err == nil {
		t.Error("RecordSolve() should reject an empty level id")
	}
}

func TestStoreRecentSolvesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		if _, err := store.RecordSolve("klotski", "warm-up", "alice", 0); err != nil {
			t.Fatalf("RecordSolve() failed: %v", err)
		}
	}

	entries, err := store.RecentSolves("klotski", 5)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("Expected 5 solves, got %d", len(entries))
	}

	// Default limit
	entries, err = store.RecentSolves("klotski", 0)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(entries) != 20 {
		t.Errorf("Expected 20 solves with default limit, got %d", len(entries))
	}
}

func TestStoreLevelSolves(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("klotski", "warm-up", "alice", 0)
	store.RecordSolve("klotski", "huarong-dao", "alice", 5)
	store.RecordSolve("klotski", "warm-up", "bob", 0)

	entries, err := store.LevelSolves("klotski", "warm-up", 10)
	if err != nil {
		t.Fatalf("LevelSolves() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 warm-up solves, got %d", len(entries))
	}
	for _, e := range entries {
		if e.LevelID != "warm-up" {
			t.Errorf("LevelSolves() returned level %s", e.LevelID)
		}
	}
}

func TestStoreSolvedLevels(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("klotski", "warm-up", "alice", 0)
	store.RecordSolve("klotski", "warm-up", "alice", 0)
	store.RecordSolve("klotski", "command", "bob", 0)

	solved, err := store.SolvedLevels("klotski", "alice")
	if err != nil {
		t.Fatalf("SolvedLevels() failed: %v", err)
	}
	if len(solved) != 1 || !solved["warm-up"] {
		t.Errorf("alice solved %v, want only warm-up", solved)
	}

	all, err := store.SolvedLevels("klotski", "")
	if err != nil {
		t.Fatalf("SolvedLevels() failed: %v", err)
	}
	if len(all) != 2 || !all["command"] {
		t.Errorf("all players solved %v, want warm-up and command", all)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("klotski", "warm-up", "alice", 0)
	store.RecordSolve("klotski", "warm-up", "alice", 3)
	store.RecordSolve("klotski", "warm-up", "bob", 0)
	store.RecordSolve("klotski", "huarong-dao", "bob", 1)

	stats, err := store.LevelStats("klotski")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}

	warm := stats["warm-up"]
	if warm.Solves != 3 || warm.Players != 2 || warm.CleanSolves != 2 {
		t.Errorf("warm-up stats = %+v", *warm)
	}
	if warm.LastSolved.IsZero() {
		t.Error("LastSolved was not parsed")
	}
	if dao := stats["huarong-dao"]; dao.CleanSolves != 0 {
		t.Errorf("huarong-dao clean solves = %d, want 0", dao.CleanSolves)
	}
}

func TestStoreClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("klotski", "warm-up", "alice", 0)
	store.RecordSolve("other", "warm-up", "alice", 0)

	if err := store.ClearSolves("klotski"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	entries, err := store.RecentSolves("klotski", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no solves after clear, got %d", len(entries))
	}

	entries, err = store.RecentSolves("other", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Error("ClearSolves() removed another game's solves")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
