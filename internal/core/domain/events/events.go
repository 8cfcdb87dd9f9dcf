package events

import "context"

const (
	REMINDER_CREATED   = "reminder.created"
	FORM_CHANGED       = "form.changed"
	CATEGORIES_CHANGED = "categories.changed"
)

// Event notifies observers that application state changed.
// Payload must be JSON serializable.
type Event struct {
	Name    string
	Payload any
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
