package services

import (
	"context"

	"remindu/internal/core/domain/category"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/logging"
)

type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}

// Publish sends event to observers. A failed publish is logged and
// never fails the operation that caused it.
func Publish(ctx context.Context, log logging.Logger, publisher events.Publisher, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warning(
			ctx,
			"Could not publish event.",
			logging.Entry("event", event.Name),
			logging.Entry("err", err),
		)
	}
}

// SaveCategories writes the registry to storage and reports whether it
// succeeded. The in-memory registry stays authoritative on failure.
func SaveCategories(ctx context.Context, log logging.Logger, repository category.Repository, registry category.Registry) bool {
	if err := repository.Save(ctx, registry); err != nil {
		log.Warning(
			ctx,
			"Categories were not persisted.",
			logging.Entry("count", registry.Len()),
			logging.Entry("err", err),
		)
		return false
	}
	return true
}
