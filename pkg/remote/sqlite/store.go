// Package sqlite provides a SQLite-backed RemoteStore implementation.
//
// It consumes two tables: a singleton-like site_settings table and a
// member_companies table. Row-level reads and writes only; no transactions,
// no batching, no retries.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"orgboard/pkg/orgboard"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

const schema = `
CREATE TABLE IF NOT EXISTS site_settings (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	logo_image_url TEXT,
	founder_image_url TEXT,
	chairman_image_url TEXT
);

CREATE TABLE IF NOT EXISTS member_companies (
	id TEXT PRIMARY KEY,
	order_index INTEGER NOT NULL,
	name TEXT NOT NULL,
	ceo TEXT NOT NULL DEFAULT '',
	business TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	website_url TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_member_companies_order
	ON member_companies (order_index);
`

// Store is a SQLite-backed remote store.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
	newID func() string
}

// Open opens (or creates) a SQLite store at path and ensures the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("open sqlite store: empty path")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open sqlite store ping: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open sqlite store ensure schema: %w", err)
	}

	return &Store{
		sqlDB: sqlDB,
		clock: time.Now,
		newID: uuid.NewString,
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

func (s *Store) guard(operation string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("%s: store is not configured", operation)
	}

	return nil
}

func (s *Store) now() time.Time {
	return s.clock().UTC()
}

var _ orgboard.RemoteStore = (*Store)(nil)
