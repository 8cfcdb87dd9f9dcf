package formstate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindu/internal/core/domain/category"
	"remindu/internal/core/domain/form"
)

func TestUpdate(t *testing.T) {
	container := New(form.NewState(category.Registry{}))

	state, err := container.Update(context.Background(), func(s form.State) (form.State, error) {
		return form.Apply(s, form.DescriptionChanged{Description: "Buy milk"})
	})

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", state.Description)
	assert.Equal(t, "Buy milk", container.Get(context.Background()).Description)
}

func TestFailedUpdateKeepsState(t *testing.T) {
	container := New(form.NewState(category.Registry{}))

	state, err := container.Update(context.Background(), func(s form.State) (form.State, error) {
		s.Description = "lost"
		return s, errors.New("rejected")
	})

	assert.Error(t, err)
	assert.Equal(t, "", state.Description)
	assert.Equal(t, form.PhaseIdle, container.Get(context.Background()).Phase())
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	container := New(form.NewState(category.Registry{}))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			container.Update(context.Background(), func(s form.State) (form.State, error) {
				return form.Apply(s, form.CategoryAdded{Category: category.Category{
					ID:   category.ID(fmt.Sprintf("c-%d", i)),
					Name: "c",
					Icon: category.IconBook,
				}})
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, container.Get(context.Background()).Categories.Len())
}
