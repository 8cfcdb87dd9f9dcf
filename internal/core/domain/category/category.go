package category

import (
	c "remindu/internal/core/domain/common"

	validation "github.com/go-ozzo/ozzo-validation"
)

const MAX_NAME_LEN = 64

type ID string

type Category struct {
	ID    ID
	Name  string
	Icon  Icon
	Color Color
}

// Equal reports structural equality: name, icon and color match.
// The identifier is deliberately not compared.
func (cat Category) Equal(other Category) bool {
	return cat.Name == other.Name && cat.Icon == other.Icon && cat.Color == other.Color
}

// Fields are the values collected by the category editor before a save.
type Fields struct {
	Name  string
	Icon  Icon
	Color c.Optional[Color]
}

func FieldsOf(cat Category) Fields {
	return Fields{Name: cat.Name, Icon: cat.Icon, Color: c.NewOptional(cat.Color, true)}
}

// Validate checks name, icon and color in that order and returns
// the error of the first failing check.
func (f Fields) Validate() error {
	if err := validation.Validate(f.Name, validation.Required); err != nil {
		return ErrCategoryNameRequired
	}
	if err := validation.Validate(f.Name, validation.RuneLength(1, MAX_NAME_LEN)); err != nil {
		return ErrCategoryNameIsTooLong
	}
	if f.Icon == IconUnknown {
		return ErrCategoryIconRequired
	}
	if !f.Color.IsPresent {
		return ErrCategoryColorRequired
	}
	return nil
}

// Build validates the fields and returns a category with the given id.
func (f Fields) Build(id ID) (cat Category, err error) {
	if err := f.Validate(); err != nil {
		return cat, err
	}
	if id == "" {
		return cat, ErrCategoryIDNotGenerated
	}
	return Category{ID: id, Name: f.Name, Icon: f.Icon, Color: f.Color.Value}, nil
}

type IdentityGenerator interface {
	GenerateCategoryID() ID
}
