// Package store persists the application index between runs so a fresh
// launch can serve queries before the first live rebuild completes.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/asheshgoplani/launchdeck/internal/entry"

	_ "modernc.org/sqlite"
)

// SchemaVersion tracks the current database schema version.
// Bump this when adding migrations.
const SchemaVersion = 1

// Store wraps a SQLite database holding the cached application index.
// Thread-safe for concurrent use from multiple goroutines within one
// process; WAL mode + busy timeout keep cross-process access safe.
type Store struct {
	db *sql.DB
}

// Open creates or opens the index cache database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: mkdir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	// WAL mode: allows concurrent readers while writing
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: wal mode: %w", err)
	}

	// Busy timeout: wait up to 5s if another process holds a lock
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: busy timeout: %w", err)
	}

	return &Store{db: db}, nil
}

// Close checkpoints WAL and closes the database.
func (s *Store) Close() error {
	_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return s.db.Close()
}

// Migrate creates tables if they don't exist.
func (s *Store) Migrate() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin migrate: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS metadata (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("store: create metadata: %w", err)
	}

	if _, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS apps (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			position   INTEGER NOT NULL,
			payload    TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("store: create apps: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)
	`, fmt.Sprintf("%d", SchemaVersion)); err != nil {
		return fmt.Errorf("store: set schema version: %w", err)
	}

	return tx.Commit()
}

// SaveApps replaces the cached index with apps, preserving their order.
func (s *Store) SaveApps(apps []entry.Application) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM apps"); err != nil {
		return fmt.Errorf("store: clear apps: %w", err)
	}

	now := time.Now().Unix()
	stmt, err := tx.Prepare(`
		INSERT INTO apps (id, name, position, payload, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("store: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, app := range apps {
		payload, err := json.Marshal(app)
		if err != nil {
			return fmt.Errorf("store: marshal app %s: %w", app.ID, err)
		}
		if _, err := stmt.Exec(app.ID, app.Name, i, string(payload), now); err != nil {
			return fmt.Errorf("store: insert app %s: %w", app.ID, err)
		}
	}

	return tx.Commit()
}

// LoadApps returns the cached index in saved order. A missing or empty
// table yields an empty slice, not an error.
func (s *Store) LoadApps() ([]entry.Application, error) {
	rows, err := s.db.Query("SELECT payload FROM apps ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("store: query apps: %w", err)
	}
	defer rows.Close()

	var apps []entry.Application
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("store: scan app: %w", err)
		}
		var app entry.Application
		if err := json.Unmarshal([]byte(payload), &app); err != nil {
			// One malformed row must not poison the whole cache.
			continue
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// Count returns the number of cached applications.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM apps").Scan(&count); err != nil {
		return 0, fmt.Errorf("store: count apps: %w", err)
	}
	return count, nil
}
