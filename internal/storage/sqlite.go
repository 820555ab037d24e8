// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the solve log.
type Store struct {
	db *sql.DB
}

// SolveEntry represents one completed level.
type SolveEntry struct {
	ID        int64
	GameID    string
	LevelID   string
	Player    string
	HintsUsed int
	CreatedAt time.Time
}

// Clean reports whether the level was solved without hints.
func (e SolveEntry) Clean() bool {
	return e.HintsUsed == 0
}

// LevelStat contains aggregated statistics for one level.
type LevelStat struct {
	LevelID     string
	Solves      int
	Players     int
	CleanSolves int // Solves without hints
	LastSolved  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			hints_used INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_game_level ON solves(game_id, level_id);
		CREATE INDEX IF NOT EXISTS idx_solves_player ON solves(game_id, player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordSolve logs a solved level.
// Returns the ID of the inserted record.
func (s *Store) RecordSolve(gameID, levelID, player string, hintsUsed int) (int64, error) {
	if levelID == "" {
		return 0, errors.New("storage: cannot record solve without level id")
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (game_id, level_id, player, hints_used) VALUES (?, ?, ?, ?)",
		gameID, levelID, player, hintsUsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSolves retrieves the most recent solves for the given game.
func (s *Store) RecentSolves(gameID string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, player, hints_used, created_at
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// LevelSolves retrieves the most recent solves of one level.
func (s *Store) LevelSolves(gameID, levelID string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, player, hints_used, created_at
		 FROM solves
		 WHERE game_id = ? AND level_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level solves: %w", err)
	}
	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]SolveEntry, error) {
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.LevelID, &e.Player, &e.HintsUsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SolvedLevels returns the set of level IDs the player has solved.
// An empty player matches every player.
func (s *Store) SolvedLevels(gameID, player string) (map[string]bool, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT level_id
		 FROM solves
		 WHERE game_id = ? AND (? = '' OR player = ?)`,
		gameID, player, player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved levels: %w", err)
	}
	defer rows.Close()

	solved := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		solved[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solved, nil
}

// LevelStats retrieves aggregated statistics for every solved level of a game.
func (s *Store) LevelStats(gameID string) (map[string]*LevelStat, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), COUNT(DISTINCT player),
		        SUM(CASE WHEN hints_used = 0 THEN 1 ELSE 0 END), MAX(created_at)
		 FROM solves
		 WHERE game_id = ?
		 GROUP BY level_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStat)
	for rows.Next() {
		var st LevelStat
		var lastSolved any
		if err := rows.Scan(&st.LevelID, &st.Solves, &st.Players, &st.CleanSolves, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastSolved = parseTime(lastSolved)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSolves deletes all solves for the given game.
func (s *Store) ClearSolves(gameID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
