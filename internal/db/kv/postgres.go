package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/storage"
)

const pgxUpsert = `INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

type PgxStore struct {
	pool *pgxpool.Pool
}

func NewPgxStore(pool *pgxpool.Pool) *PgxStore {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxStore{pool: pool}
}

func (s *PgxStore) Get(ctx context.Context, key string) (value string, err error) {
	err = s.pool.QueryRow(ctx, "SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", storage.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *PgxStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.pool.Exec(ctx, pgxUpsert, key, value)
	return err
}

// Update serialises writers of key with a transaction scoped advisory lock,
// which also covers keys that have no row yet.
func (s *PgxStore) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	return s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
			return err
		}
		found := true
		var current string
		err := tx.QueryRow(ctx, "SELECT value FROM kv WHERE key = $1", key).Scan(&current)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			found = false
		case err != nil:
			return err
		}

		value, err := fn(current, found)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, pgxUpsert, key, value)
		return err
	})
}
