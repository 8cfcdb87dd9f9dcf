package category

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"remindu/internal/core/domain/category"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/storage"
	"remindu/internal/db/codec"
)

// KVCategoryRepository stores the registry under a single key. Processes
// sharing the key merge their changes: a save applies what changed since
// this repository last loaded or saved, on top of what is stored now.
type KVCategoryRepository struct {
	store storage.KeyValueStore
	base  category.Registry
	lock  sync.Mutex
}

func NewKVCategoryRepository(store storage.KeyValueStore) *KVCategoryRepository {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	return &KVCategoryRepository{store: store}
}

// Load returns an empty registry when nothing was saved yet.
func (r *KVCategoryRepository) Load(ctx context.Context) (registry category.Registry, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	data, err := r.store.Get(ctx, storage.CATEGORIES_KEY)
	if errors.Is(err, storage.ErrKeyNotFound) {
		r.base = registry
		return registry, nil
	}
	if err != nil {
		return registry, fmt.Errorf("could not read categories: %w", err)
	}
	registry, err = codec.DecodeCategories(data)
	if err != nil {
		return registry, err
	}
	r.base = registry
	return registry, nil
}

func (r *KVCategoryRepository) Save(ctx context.Context, registry category.Registry) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	err := r.store.Update(ctx, storage.CATEGORIES_KEY, func(current string, found bool) (string, error) {
		merged := registry
		if found {
			// An unreadable document is replaced.
			if stored, err := codec.DecodeCategories(current); err == nil {
				merged = rebase(stored, r.base, registry)
			}
		}
		return codec.EncodeCategories(merged)
	})
	if err != nil {
		return err
	}
	r.base = registry
	return nil
}

// rebase applies the changes from base to next onto stored. Categories
// keep the stored order; new ones are appended.
func rebase(stored, base, next category.Registry) category.Registry {
	categories := stored.List()
	indexOf := func(id category.ID) int {
		for ix, cat := range categories {
			if cat.ID == id {
				return ix
			}
		}
		return -1
	}

	for _, cat := range base.List() {
		if _, ok := next.Get(cat.ID); ok {
			continue
		}
		if ix := indexOf(cat.ID); ix != -1 {
			categories = append(categories[:ix], categories[ix+1:]...)
		}
	}
	for _, cat := range next.List() {
		previous, known := base.Get(cat.ID)
		if known && previous == cat {
			continue
		}
		if ix := indexOf(cat.ID); ix != -1 {
			categories[ix] = cat
		} else {
			categories = append(categories, cat)
		}
	}

	selected := stored.SelectedID()
	if next.SelectedID() != base.SelectedID() {
		selected = next.SelectedID()
	}
	return category.NewRegistry(categories, selected)
}
