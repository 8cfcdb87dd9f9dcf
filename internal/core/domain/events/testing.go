package events

import (
	"context"
	"sync"
)

type FakePublisher struct {
	Published []Event
	Error     error
	lock      sync.Mutex
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (p *FakePublisher) Publish(ctx context.Context, event Event) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.Error != nil {
		return p.Error
	}
	p.Published = append(p.Published, event)
	return nil
}

func (p *FakePublisher) Names() []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	names := make([]string, 0, len(p.Published))
	for _, e := range p.Published {
		names = append(names, e.Name)
	}
	return names
}
