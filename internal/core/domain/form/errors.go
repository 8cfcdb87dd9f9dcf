package form

import (
	e "remindu/internal/core/domain/errors"
)

var (
	ErrRepeatDialogClosed = e.NewValidationError("repeat dialog is not open")
	ErrUnknownEvent       = e.NewValidationError("unknown form event")
)

var ErrCategoryEventNotAllowed = e.NewValidationError("categories can not be changed through the form")
