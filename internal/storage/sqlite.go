// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/termo/internal/game"
)

// DefaultPath is where the CLI keeps its database unless told otherwise.
const DefaultPath = "~/.termo/termo.db"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunSummary describes one run with its aggregated level results.
type RunSummary struct {
	ID         string
	Player     string
	StartedAt  time.Time
	FinishedAt time.Time // zero while the run is open
	Completed  bool
	Wins       int
	Losses     int
	BestLevel  int // highest level won, 0 if none
}

// LevelStats aggregates the outcomes of one level over all runs.
type LevelStats struct {
	Level    int
	Target   string
	Wins     int
	Losses   int
	AvgTries float64 // over wins only
}

// Totals aggregates every run in the database.
type Totals struct {
	Runs      int
	Completed int
	Wins      int
	Losses    int
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite has a single writer; SSH sessions record concurrently.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			finished_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);

		CREATE TABLE IF NOT EXISTS level_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			level INTEGER NOT NULL,
			target TEXT NOT NULL,
			outcome TEXT NOT NULL,
			tries INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_results_run ON level_results(run_id);
		CREATE INDEX IF NOT EXISTS idx_level_results_level ON level_results(level);
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

// Run is an open run. It records session events as level results.
type Run struct {
	ID     string
	Player string
	store  *Store
}

var _ game.Recorder = (*Run)(nil)

// StartRun opens a new run for the player and returns its recorder.
func (s *Store) StartRun(player string) (*Run, error) {
	if player == "" {
		player = "anonymous"
	}
	id := uuid.NewString()
	if _, err := s.db.Exec("INSERT INTO runs (id, player) VALUES (?, ?)", id, player); err != nil {
		return nil, fmt.Errorf("storage: cannot start run: %w", err)
	}
	return &Run{ID: id, Player: player, store: s}, nil
}

// Record stores a level outcome. Completing the campaign closes the run.
func (r *Run) Record(ev game.Event) error {
	if ev.Kind == game.EventCompleted {
		_, err := r.store.db.Exec(
			"UPDATE runs SET completed = 1, finished_at = CURRENT_TIMESTAMP WHERE id = ?",
			r.ID,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot complete run: %w", err)
		}
		return nil
	}

	_, err := r.store.db.Exec(
		"INSERT INTO level_results (run_id, level, target, outcome, tries) VALUES (?, ?, ?, ?, ?)",
		r.ID, ev.Level, ev.Target, string(ev.Kind), ev.Tries,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record level result: %w", err)
	}
	return nil
}

// Finish marks the run as finished if it is still open.
func (r *Run) Finish() error {
	_, err := r.store.db.Exec(
		"UPDATE runs SET finished_at = CURRENT_TIMESTAMP WHERE id = ? AND finished_at IS NULL",
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	return nil
}

// RunByID retrieves a run summary. Returns nil if the run does not exist.
func (s *Store) RunByID(id string) (*RunSummary, error) {
	rows, err := s.db.Query(runSummaryQuery+" WHERE r.id = ? GROUP BY r.id", id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	runs, err := scanRunSummaries(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		runSummaryQuery+" GROUP BY r.id ORDER BY r.started_at DESC, r.rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRunSummaries(rows)
}

const runSummaryQuery = `
	SELECT r.id, r.player, r.completed, r.started_at, r.finished_at,
	       COALESCE(SUM(CASE WHEN l.outcome = 'won' THEN 1 ELSE 0 END), 0),
	       COALESCE(SUM(CASE WHEN l.outcome = 'lost' THEN 1 ELSE 0 END), 0),
	       COALESCE(MAX(CASE WHEN l.outcome = 'won' THEN l.level END), 0)
	FROM runs r
	LEFT JOIN level_results l ON l.run_id = r.id`

func scanRunSummaries(rows *sql.Rows) ([]RunSummary, error) {
	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var startedAt, finishedAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Completed, &startedAt, &finishedAt,
			&r.Wins, &r.Losses, &r.BestLevel); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = parseDatetime(startedAt)
		r.FinishedAt = parseDatetime(finishedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type levelResult struct {
	level   int
	target  string
	outcome string
	tries   int
}

// LevelStats aggregates wins, losses and average tries per level,
// ordered by level.
func (s *Store) LevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query("SELECT level, target, outcome, tries FROM level_results ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	defer rows.Close()

	var results []levelResult
	for rows.Next() {
		var r levelResult
		if err := rows.Scan(&r.level, &r.target, &r.outcome, &r.tries); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	byLevel := lo.GroupBy(results, func(r levelResult) int { return r.level })
	levels := lo.Keys(byLevel)
	slices.Sort(levels)

	return lo.Map(levels, func(level int, _ int) LevelStats {
		group := byLevel[level]
		wins := lo.Filter(group, func(r levelResult, _ int) bool { return r.outcome == string(game.EventLevelWon) })

		st := LevelStats{
			Level:  level,
			Target: group[len(group)-1].target,
			Wins:   len(wins),
			Losses: lo.CountBy(group, func(r levelResult) bool { return r.outcome == string(game.EventLevelLost) }),
		}
		if len(wins) > 0 {
			st.AvgTries = float64(lo.SumBy(wins, func(r levelResult) int { return r.tries })) / float64(len(wins))
		}
		return st
	}), nil
}

// Totals returns run and outcome counts over the whole database.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM runs",
	).Scan(&t.Runs, &t.Completed)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot count runs: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0)
		 FROM level_results`,
	).Scan(&t.Wins, &t.Losses)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Totals{}, fmt.Errorf("storage: cannot count results: %w", err)
	}

	return t, nil
}

// parseDatetime handles both time.Time and string datetimes.
func parseDatetime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
