package formstate

import (
	"context"
	"sync"

	"remindu/internal/core/domain/form"
)

// Container is the process wide form state. Every change goes through
// Update, one at a time.
type Container struct {
	state form.State
	lock  sync.Mutex
}

func New(initial form.State) *Container {
	return &Container{state: initial}
}

func (c *Container) Get(ctx context.Context) form.State {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.state
}

func (c *Container) Update(ctx context.Context, fn func(form.State) (form.State, error)) (form.State, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	next, err := fn(c.state)
	if err != nil {
		return c.state, err
	}
	c.state = next
	return next, nil
}
