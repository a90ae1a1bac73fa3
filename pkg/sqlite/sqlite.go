// Package sqlite opens the embedded database used for conversation history and feedback.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database. It lives as long as the returned *sql.DB.
const MemoryPath = ":memory:"

// Open opens (creating if needed) the database at path with WAL and a busy timeout.
// The pool is limited to one connection: SQLite allows a single writer, and an
// in-memory database exists only on the connection that created it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite.Open: path is required")
	}

	dsn := path
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("sqlite.Open: mkdir %s: %w", dir, err)
			}
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		dsn = path + sep + "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: ping: %w", err)
	}
	return db, nil
}

// Migrate runs each statement in order. Statements must be idempotent
// (CREATE TABLE IF NOT EXISTS, CREATE INDEX IF NOT EXISTS).
func Migrate(ctx context.Context, db *sql.DB, statements ...string) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite.Migrate: statement %d: %w", i, err)
		}
	}
	return nil
}
