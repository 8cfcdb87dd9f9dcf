package category

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Registry  Registry
	LoadError error
	SaveError error
	Saved     []Registry
	lock      sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Load(ctx context.Context) (Registry, error) {
	if r.LoadError != nil {
		return Registry{}, r.LoadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Registry, nil
}

func (r *FakeRepository) Save(ctx context.Context, registry Registry) error {
	if r.SaveError != nil {
		return r.SaveError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Registry = registry
	r.Saved = append(r.Saved, registry)
	return nil
}

type FakeIdentityGenerator struct {
	counter int
	lock    sync.Mutex
}

func NewFakeIdentityGenerator() *FakeIdentityGenerator {
	return &FakeIdentityGenerator{}
}

func (g *FakeIdentityGenerator) GenerateCategoryID() ID {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	return ID(fmt.Sprintf("category-%d", g.counter))
}
