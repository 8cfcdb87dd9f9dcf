package kv

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v9"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/storage"
)

const maxUpdateAttempts = 10

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore keeps every key under prefix so several instances can
// share one redis database.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", storage.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Update retries while another client changes the watched key.
func (s *RedisStore) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	key = s.prefix + key
	update := func(tx *redis.Tx) error {
		found := true
		current, err := tx.Get(ctx, key).Result()
		switch {
		case errors.Is(err, redis.Nil):
			found = false
		case err != nil:
			return err
		}

		value, err := fn(current, found)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, value, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, update, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return storage.ErrUpdateConflict
}
