package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"remindu/internal/core/domain/storage"
	"remindu/internal/db/migrations"
)

const sqliteUpsert = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// Other processes may hold the write lock; wait for them this long.
const sqliteBusyTimeout = "_pragma=busy_timeout(5000)"

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the database file at path and brings its schema up to date.
// Several processes may open the same file.
func OpenSQLite(path string) (*SQLiteStore, error) {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	db, err := sql.Open("sqlite", path+separator+sqliteBusyTimeout)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := migrations.UpSQLite(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (value string, err error) {
	err = s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx, sqliteUpsert, key, value)
	return err
}

func (s *SQLiteStore) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// A write as the first statement takes the database write lock before
	// the value is read.
	if _, err := tx.ExecContext(ctx, "UPDATE kv SET value = value WHERE key = ?", key); err != nil {
		return err
	}
	found := true
	var current string
	err = tx.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		found = false
	case err != nil:
		return err
	}

	value, err := fn(current, found)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, sqliteUpsert, key, value); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
