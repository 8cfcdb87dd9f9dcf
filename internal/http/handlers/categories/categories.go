// Package categories holds the request body shared by the category editor
// endpoints.
package categories

import (
	"encoding/json"
	"io"

	validation "github.com/go-ozzo/ozzo-validation"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
)

type FieldsInput struct {
	Name  string  `json:"name"`
	Icon  string  `json:"icon"`
	Color *string `json:"color"`
}

func (i *FieldsInput) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i FieldsInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Icon, validation.Length(0, 64)),
		validation.Field(&i.Color, validation.NilOrNotEmpty),
	)
}

// ToFields converts the body to editor fields. An empty icon is kept as
// unknown so that the editor reports the missing icon itself.
func (i FieldsInput) ToFields() (fields category.Fields, err error) {
	fields.Name = i.Name
	if i.Icon != "" {
		fields.Icon, err = category.ParseIcon(i.Icon)
		if err != nil {
			return fields, err
		}
	}
	if i.Color != nil {
		color, err := category.ParseColor(*i.Color)
		if err != nil {
			return fields, err
		}
		fields.Color = c.NewOptional(color, true)
	}
	return fields, nil
}
