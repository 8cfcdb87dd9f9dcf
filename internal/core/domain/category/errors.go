package category

import (
	"errors"

	e "remindu/internal/core/domain/errors"
)

var (
	ErrCategoryNameRequired  = e.NewValidationError("Please enter a category name.")
	ErrCategoryIconRequired  = e.NewValidationError("Please select an icon for the category.")
	ErrCategoryColorRequired = e.NewValidationError("Please select a color for the category.")
	ErrParseIcon             = e.NewValidationError("invalid icon")
	ErrParseColor            = e.NewValidationError("invalid color")
)

var (
	ErrCategoryDoesNotExist   = errors.New("category does not exist")
	ErrCategoryAlreadyExists  = errors.New("category already exists")
	ErrCategoryNameIsTooLong  = e.NewValidationError("category name is too long")
	ErrCategoryIDNotGenerated = errors.New("category id is empty")
)
