package reminder

import (
	"errors"

	e "remindu/internal/core/domain/errors"
)

var (
	ErrReminderDescriptionRequired = e.NewValidationError("Please enter a reminder description")
	ErrReminderDateTimeRequired    = e.NewValidationError("Please select a date and time")
	ErrReminderDescriptionTooLong  = e.NewValidationError("reminder description is too long")
	ErrReminderTitleTooLong        = e.NewValidationError("reminder title is too long")
	ErrParseType                   = e.NewValidationError("invalid reminder type")
	ErrInvalidRepeatDay            = e.NewValidationError("repeat day must be between 1 (Monday) and 7 (Sunday)")
	ErrParseDate                   = e.NewValidationError("invalid date, expected YYYY-MM-DD")
	ErrParseDateTime               = e.NewValidationError("invalid date and time, expected YYYY-MM-DDTHH:MM[:SS]")
)

var (
	// ErrNotPersisted is returned together with a successfully created
	// reminder when the in-memory collection could not be written to storage.
	ErrNotPersisted = errors.New("reminders were not persisted")
)
