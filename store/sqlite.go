package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// SQLite driver and the embedded WASM build it runs on.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DefaultDBPath is the database used when none is configured.
const DefaultDBPath = "data/db/pixeltracer.db"

const schema = `
CREATE TABLE IF NOT EXISTS id_counter (
    name TEXT PRIMARY KEY,
    last INTEGER NOT NULL
)`

const counterName = "scene"

// SQLite stores the counter in the id_counter table of a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dbPath and
// prepares the counter table. Close releases it.
func OpenSQLite(ctx context.Context, dbPath string) (*SQLite, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load returns the stored counter, or 0 if none was saved yet.
func (s *SQLite) Load(ctx context.Context) (uint64, error) {
	var last int64
	err := s.db.QueryRowContext(ctx,
		`SELECT last FROM id_counter WHERE name = ?`, counterName).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load counter: %w", err)
	}
	if last < 0 {
		return 0, fmt.Errorf("%w: %d", ErrCorrupt, last)
	}
	return uint64(last), nil
}

// Save upserts the counter.
func (s *SQLite) Save(ctx context.Context, last uint64) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO id_counter (name, last) VALUES (?, ?)
        ON CONFLICT(name) DO UPDATE SET last = excluded.last
    `, counterName, int64(last))
	if err != nil {
		return fmt.Errorf("save counter: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
