package reminder

import (
	"context"
	"time"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
)

type CreateInput struct {
	Title       string
	Description string
	DateTime    time.Time
	Type        Type
	Category    c.Optional[category.Category]
	RepeatDays  RepeatDays
}

type ReadOptions struct {
	DateEquals        c.Optional[Date]
	IsCompletedEquals c.Optional[bool]
}

// Match reports whether r satisfies every present option.
func (o ReadOptions) Match(r Reminder) bool {
	if o.DateEquals.IsPresent && !o.DateEquals.Value.Contains(r.DateTime) {
		return false
	}
	if o.IsCompletedEquals.IsPresent && o.IsCompletedEquals.Value != r.IsCompleted {
		return false
	}
	return true
}

// Repository keeps reminders in creation order.
type Repository interface {
	// Create appends a reminder. When the reminder is kept in memory but could
	// not be written to storage, the reminder is returned with ErrNotPersisted.
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
}
