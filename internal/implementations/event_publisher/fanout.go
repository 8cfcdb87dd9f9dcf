package eventpublisher

import (
	"context"
	"errors"

	"remindu/internal/core/domain/events"
)

// FanOut sends every event to all publishers, even when some of them fail.
type FanOut struct {
	publishers []events.Publisher
}

func NewFanOut(publishers ...events.Publisher) *FanOut {
	return &FanOut{publishers: publishers}
}

func (p *FanOut) Publish(ctx context.Context, event events.Event) error {
	var errs []error
	for _, publisher := range p.publishers {
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Noop struct{}

func NewNoop() Noop {
	return Noop{}
}

func (Noop) Publish(ctx context.Context, event events.Event) error {
	return nil
}
