package storage

import (
	"context"
	"errors"
)

const (
	REMINDERS_KEY  = "reminders_data"
	CATEGORIES_KEY = "categories_data"
)

var (
	ErrKeyNotFound    = errors.New("key not found")
	ErrUpdateConflict = errors.New("key kept changing during update")
)

// UpdateFunc returns the value to store given the current one. found is
// false when the key is missing.
type UpdateFunc func(current string, found bool) (string, error)

// KeyValueStore keeps string values under string keys.
// Set overwrites any previous value. Update reads and replaces a value
// with no other write to the key in between, including writes from other
// processes sharing the store; fn may be called more than once.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
