package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jmoiron/sqlx"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv_entries (
    entry_key TEXT PRIMARY KEY,
    entry_value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteStore persists entries in a single SQLite file through sqlx.
type SQLiteStore struct {
	mu sync.Mutex
	db *sqlx.DB
}

// NewSQLiteStore creates the kv_entries table if needed. The caller keeps
// the connection pool at one connection (see database.ConnectSQLite).
func NewSQLiteStore(db *sqlx.DB) (*SQLiteStore, error) {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	return sqliteBucket{s.db}.Get(ctx, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return sqliteBucket{s.db}.Set(ctx, key, value)
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	return sqliteBucket{s.db}.Remove(ctx, key)
}

func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	keys := []string{}
	err := s.db.SelectContext(ctx, &keys, `SELECT entry_key FROM kv_entries ORDER BY entry_key ASC`)
	return keys, err
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries`)
	return err
}

func (s *SQLiteStore) Update(ctx context.Context, fn func(b Bucket) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(sqliteBucket{tx}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// sqliteBucket works on either *sqlx.DB or *sqlx.Tx.
type sqliteBucket struct {
	ext sqlx.ExtContext
}

func (b sqliteBucket) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := sqlx.GetContext(ctx, b.ext, &value, `SELECT entry_value FROM kv_entries WHERE entry_key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (b sqliteBucket) Set(ctx context.Context, key, value string) error {
	_, err := b.ext.ExecContext(ctx, `INSERT INTO kv_entries (entry_key, entry_value, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(entry_key) DO UPDATE SET entry_value = excluded.entry_value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}

func (b sqliteBucket) Remove(ctx context.Context, key string) error {
	_, err := b.ext.ExecContext(ctx, `DELETE FROM kv_entries WHERE entry_key = ?`, key)
	return err
}
