// Package storage provides SQLite-based persistence for the high score,
// the saved session slot and the score history.
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

	"github.com/vovakirdan/tui-memory/internal/config"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionRecord is the saved in-progress session.
type SessionRecord struct {
	SessionID     string
	Level         string
	TotalCards    int
	RemainingTime int
	Score         int
	Matched       int
	SavedAt       time.Time
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID            int64
	SessionID     string
	Level         string
	Score         int
	Outcome       string // "won" or "time_over"
	RemainingTime int
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS saved_session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			session_id TEXT NOT NULL,
			level TEXT NOT NULL,
			total_cards INTEGER NOT NULL,
			remaining_time INTEGER NOT NULL,
			score INTEGER NOT NULL,
			matched INTEGER NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			level TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			remaining_time INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_level ON scores(level);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level, score DESC);
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

// HighScore returns the best score ever stored, or 0.
func (s *Store) HighScore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore overwrites the stored high score.
func (s *Store) SetHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ResetHighScore deletes the stored high score.
func (s *Store) ResetHighScore() error {
	if _, err := s.db.Exec("DELETE FROM high_score"); err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// SaveSession replaces the saved session slot.
func (s *Store) SaveSession(rec SessionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO saved_session (id, session_id, level, total_cards, remaining_time, score, matched, saved_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			session_id = excluded.session_id,
			level = excluded.level,
			total_cards = excluded.total_cards,
			remaining_time = excluded.remaining_time,
			score = excluded.score,
			matched = excluded.matched,
			saved_at = excluded.saved_at`,
		rec.SessionID,
		rec.Level,
		rec.TotalCards,
		rec.RemainingTime,
		rec.Score,
		rec.Matched,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// LoadSession returns the saved session, or nil if the slot is empty.
func (s *Store) LoadSession() (*SessionRecord, error) {
	var rec SessionRecord
	var savedAt any

	err := s.db.QueryRow(
		`SELECT session_id, level, total_cards, remaining_time, score, matched, saved_at
		 FROM saved_session WHERE id = 1`,
	).Scan(
		&rec.SessionID,
		&rec.Level,
		&rec.TotalCards,
		&rec.RemainingTime,
		&rec.Score,
		&rec.Matched,
		&savedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load session: %w", err)
	}

	rec.SavedAt = parseTime(savedAt)
	return &rec, nil
}

// ClearSession empties the saved session slot.
func (s *Store) ClearSession() error {
	if _, err := s.db.Exec("DELETE FROM saved_session"); err != nil {
		return fmt.Errorf("storage: cannot clear session: %w", err)
	}
	return nil
}

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(entry ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO scores (session_id, level, score, outcome, remaining_time)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID, entry.Level, entry.Score, entry.Outcome, entry.RemainingTime,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for a level, or for every level
// when level is empty. Results are ordered by score descending.
func (s *Store) TopScores(level string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, level, score, outcome, remaining_time, created_at
		 FROM scores
		 WHERE ? = '' OR level = ?
		 ORDER BY score DESC, remaining_time DESC, id ASC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Level, &e.Score, &e.Outcome, &e.RemainingTime, &createdAt); err != nil {
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

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Level      string
	Games      int
	Wins       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetLevelStats retrieves aggregated statistics for a level.
func (s *Store) GetLevelStats(level string) (*LevelStats, error) {
	stats := &LevelStats{Level: level}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM scores WHERE level = ?`,
		level,
	).Scan(&stats.Games, &stats.Wins, &stats.BestScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearScores deletes the score history for a level, or all levels when
// level is empty.
func (s *Store) ClearScores(level string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE ? = '' OR level = ?", level, level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
