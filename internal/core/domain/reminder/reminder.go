package reminder

import (
	"time"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	e "remindu/internal/core/domain/errors"
)

const (
	MAX_TITLE_LEN       = 256
	MAX_DESCRIPTION_LEN = 1024
)

type ID string

type Reminder struct {
	ID          ID
	Title       string
	Description string
	DateTime    time.Time
	Type        Type
	Category    c.Optional[category.Category]
	IsCompleted bool
	RepeatDays  RepeatDays
}

func (r *Reminder) Validate() error {
	if r.ID == "" {
		return e.NewInvalidStateError("reminder ID must be set")
	}
	if r.DateTime.IsZero() {
		return e.NewInvalidStateError("reminder date and time must be set")
	}
	if r.Type == TypeUnknown {
		return e.NewInvalidStateError("reminder type must be set")
	}
	if r.Category.IsPresent && r.Category.Value.ID == "" {
		return e.NewInvalidStateError("reminder category must have an ID")
	}
	return nil
}

// IsRepeating reports whether the reminder recurs on at least one weekday.
func (r *Reminder) IsRepeating() bool {
	return !r.RepeatDays.IsEmpty()
}

// WallClock drops the location of t and keeps its wall clock reading.
// Reminder date-times are timezone-naive and are always stored this way.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

const DATE_TIME_LAYOUT = "2006-01-02T15:04:05.999999999"

// ParseDateTime parses an ISO-8601 local date-time without offset.
// Seconds are optional.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range []string{DATE_TIME_LAYOUT, "2006-01-02T15:04"} {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrParseDateTime
}

func FormatDateTime(t time.Time) string {
	return WallClock(t).Format(DATE_TIME_LAYOUT)
}

type IdentityGenerator interface {
	GenerateReminderID() ID
}
