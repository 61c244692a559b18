package results

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store persists reports in a SQLite database, so fuzzing campaigns can be
// compared across compiler versions and regressions triaged later.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) a report store at the given path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		kind TEXT NOT NULL,
		circuit_id TEXT NOT NULL,
		status TEXT NOT NULL,
		passed INTEGER NOT NULL,
		body TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_kind ON reports(kind);
	CREATE INDEX IF NOT EXISTS idx_reports_passed ON reports(passed);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save inserts a report.
func (s *Store) Save(report *Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	passed := 0
	if report.AllPassed() {
		passed = 1
	}

	_, err = s.db.Exec(
		`INSERT INTO reports (id, created_at, kind, circuit_id, status, passed, body) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		report.Metadata.RunID,
		report.Metadata.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		report.Metadata.Kind,
		report.Circuit.ID,
		report.Metadata.Status,
		passed,
		string(body),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// List returns the most recent reports, optionally filtered by kind
// (empty means all kinds).
func (s *Store) List(kind string, limit int) ([]*Report, error) {
	query := `SELECT body FROM reports`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	return s.query(query, args...)
}

// Failures returns the most recent reports where any comparison failed or
// the run errored. This is the fuzzing triage view.
func (s *Store) Failures(limit int) ([]*Report, error) {
	return s.query(`SELECT body FROM reports WHERE passed = 0 ORDER BY created_at DESC LIMIT ?`, limit)
}

func (s *Store) query(query string, args ...any) ([]*Report, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		var report Report
		if err := json.Unmarshal([]byte(body), &report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
