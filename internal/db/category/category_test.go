package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	"remindu/internal/core/domain/storage"
	"remindu/internal/db/codec"
)

func TestLoadMissingIsEmpty(t *testing.T) {
	registry, err := NewKVCategoryRepository(storage.NewFakeStore()).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, registry.Len())
}

func TestSaveAndLoad(t *testing.T) {
	store := storage.NewFakeStore()
	repo := NewKVCategoryRepository(store)
	gym := category.Category{ID: "gym", Name: "Gym", Icon: category.IconFitnessCenter, Color: category.MatteMint}
	registry := category.NewRegistry([]category.Category{gym}, c.NewOptional(gym.ID, true))

	require.NoError(t, repo.Save(context.Background(), registry))
	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, registry.List(), loaded.List())
	assert.Equal(t, gym, loaded.Selected().Value)
}

func TestLoadErrors(t *testing.T) {
	store := storage.NewFakeStore()
	store.Values[storage.CATEGORIES_KEY] = `{"version": 9}`

	_, err := NewKVCategoryRepository(store).Load(context.Background())
	assert.ErrorIs(t, err, codec.ErrUnsupportedVersion)

	store.GetError = errors.New("io")
	_, err = NewKVCategoryRepository(store).Load(context.Background())
	assert.Error(t, err)
}

var (
	gym  = category.Category{ID: "gym", Name: "Gym", Icon: category.IconFitnessCenter, Color: category.MatteMint}
	work = category.Category{ID: "work", Name: "Work", Icon: category.IconWork, Color: category.MatteBlue}
	home = category.Category{ID: "home", Name: "Home", Icon: category.IconHome, Color: category.MattePeach}
)

func TestRepositoriesSharingStoreMergeChanges(t *testing.T) {
	ctx := context.Background()
	store := storage.NewFakeStore()
	first := NewKVCategoryRepository(store)
	second := NewKVCategoryRepository(store)
	initial := category.NewRegistry([]category.Category{gym}, c.Optional[category.ID]{})
	require.NoError(t, first.Save(ctx, initial))
	_, err := second.Load(ctx)
	require.NoError(t, err)

	withWork, err := initial.Add(work)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, withWork))

	// second still holds the registry it loaded
	withHome, err := initial.Add(home)
	require.NoError(t, err)
	withHome, err = withHome.Select(home.ID)
	require.NoError(t, err)
	require.NoError(t, second.Save(ctx, withHome))

	stored, err := NewKVCategoryRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []category.Category{gym, work, home}, stored.List())
	assert.Equal(t, c.NewOptional(home.ID, true), stored.SelectedID())
}

func TestRebase(t *testing.T) {
	none := c.Optional[category.ID]{}
	renamedGym := category.Category{ID: gym.ID, Name: "Pool", Icon: gym.Icon, Color: gym.Color}
	base := category.NewRegistry([]category.Category{gym, work}, c.NewOptional(gym.ID, true))

	cases := []struct {
		id       string
		stored   category.Registry
		next     category.Registry
		expected category.Registry
	}{
		{
			id:       "unchanged-keeps-stored",
			stored:   category.NewRegistry([]category.Category{gym, work, home}, c.NewOptional(work.ID, true)),
			next:     base,
			expected: category.NewRegistry([]category.Category{gym, work, home}, c.NewOptional(work.ID, true)),
		},
		{
			id:       "removal",
			stored:   category.NewRegistry([]category.Category{gym, work, home}, none),
			next:     category.NewRegistry([]category.Category{gym}, c.NewOptional(gym.ID, true)),
			expected: category.NewRegistry([]category.Category{gym, home}, none),
		},
		{
			id:       "update",
			stored:   category.NewRegistry([]category.Category{home, gym, work}, none),
			next:     category.NewRegistry([]category.Category{renamedGym, work}, c.NewOptional(gym.ID, true)),
			expected: category.NewRegistry([]category.Category{home, renamedGym, work}, none),
		},
		{
			id:       "deselection",
			stored:   category.NewRegistry([]category.Category{gym, work}, c.NewOptional(gym.ID, true)),
			next:     category.NewRegistry([]category.Category{gym, work}, none),
			expected: category.NewRegistry([]category.Category{gym, work}, none),
		},
		{
			id:       "selection-of-removed-category-dropped",
			stored:   category.NewRegistry([]category.Category{gym}, none),
			next:     category.NewRegistry([]category.Category{gym, work}, c.NewOptional(work.ID, true)),
			expected: category.NewRegistry([]category.Category{gym}, none),
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			merged := rebase(testcase.stored, base, testcase.next)

			assert.True(t, testcase.expected.Identical(merged), "got %v", merged.List())
		})
	}
}
