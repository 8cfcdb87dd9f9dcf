package form

import (
	"context"
	"sync"
)

type FakeContainer struct {
	State State
	lock  sync.Mutex
}

func NewFakeContainer(state State) *FakeContainer {
	return &FakeContainer{State: state}
}

func (f *FakeContainer) Get(ctx context.Context) State {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.State
}

func (f *FakeContainer) Update(ctx context.Context, fn func(State) (State, error)) (State, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	next, err := fn(f.State)
	if err != nil {
		return f.State, err
	}
	f.State = next
	return next, nil
}
