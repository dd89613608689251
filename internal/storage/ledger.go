// Package storage keeps the run ledger: one row per finished run, held in
// an in-memory SQLite database that lives as long as the process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// EndReason says why a run finished.
type EndReason string

const (
	ReasonCaught EndReason = "caught"
	ReasonQuit   EndReason = "quit"
)

// Run is one finished play-through.
type Run struct {
	ID        int64
	GameID    string
	Score     int
	Level     int // Highest level reached, 1-based
	Reason    EndReason
	Ticks     uint64
	CreatedAt time.Time
}

// Stats summarises every run of one game.
type Stats struct {
	Runs         int
	BestScore    int
	TotalScore   int
	HighestLevel int
}

// Ledger records runs for the current session.
type Ledger struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db, now: time.Now}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			reason TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database; the recorded runs are gone afterwards.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID. CreatedAt is set
// by the ledger.
func (l *Ledger) RecordRun(r Run) (int64, error) {
	result, err := l.db.Exec(
		`INSERT INTO runs (game_id, score, level, reason, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Score, r.Level, string(r.Reason), int64(r.Ticks), l.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns returns the best runs for gameID: highest score first, then
// highest level, then earliest.
func (l *Ledger) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, game_id, score, level, reason, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, level DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			reason  string
			ticks   int64
			created int64
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Level, &reason, &ticks, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Reason = EndReason(reason)
		r.Ticks = uint64(ticks)
		r.CreatedAt = time.Unix(0, created)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score for gameID, or 0 with no runs.
func (l *Ledger) BestScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := l.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates every run of gameID.
func (l *Ledger) Stats(gameID string) (Stats, error) {
	var s Stats
	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(score), 0), COALESCE(MAX(level), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&s.Runs, &s.BestScore, &s.TotalScore, &s.HighestLevel)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return s, nil
}

// Clear deletes every run of gameID.
func (l *Ledger) Clear(gameID string) error {
	_, err := l.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
