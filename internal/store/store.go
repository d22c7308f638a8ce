// Package store archives rendered segment streams in SQLite so that batch
// runs can be diffed: regenerated share images must be pixel-stable, and the
// archive makes an unexpected output change visible before images ship.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the render archive database.
type DB struct {
	conn *sql.DB
	path string
}

// Open creates or opens the archive at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &DB{conn: conn, path: dbPath}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

func migrate(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS renders (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			story_slug  TEXT NOT NULL,
			country     TEXT NOT NULL,
			language    TEXT NOT NULL,
			field       TEXT NOT NULL,
			segments    TEXT NOT NULL,
			rendered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_renders_key
			ON renders(story_slug, country, language, field, rendered_at);
	`)
	return err
}
