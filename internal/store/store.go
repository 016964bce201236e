// Package store persists all site content behind a thin sqlx layer.
// The default backend is an embedded SQLite database; a Postgres DSN can
// be supplied instead for hosted deployments.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store holds admin accounts, events, media, announcements, and the
// contact-form inbox.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the content database and runs migrations.
// Supported drivers are "sqlite" (the default) and "postgres".
// For sqlite an empty DSN opens an in-memory database, which tests use.
func Open(driver, dsn string) (*Store, error) {
	if driver == "" {
		driver = "sqlite"
	}

	var db *sqlx.DB
	var err error

	switch driver {
	case "sqlite":
		if dsn == "" {
			dsn = ":memory:?_journal_mode=WAL"
		}
		db, err = sqlx.Connect("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	case "postgres":
		db, err = sqlx.Connect("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate content database: %w", err)
	}
	return s, nil
}

// SQLitePath returns the DSN for a file-backed SQLite database under
// dataDir, creating the directory if needed.
func SQLitePath(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return filepath.Join(dataDir, "churchapi.db") + "?_journal_mode=WAL&_busy_timeout=5000", nil
}

// Ping verifies database connectivity, used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
