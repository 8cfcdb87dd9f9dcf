package codec

import (
	"encoding/json"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
)

type categoryRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func encodeCategory(cat category.Category) categoryRecord {
	return categoryRecord{
		ID:    string(cat.ID),
		Name:  cat.Name,
		Icon:  cat.Icon.String(),
		Color: cat.Color.String(),
	}
}

// decodeCategory accepts an empty icon, which only legacy documents
// produce. Every other field must parse.
func decodeCategory(record categoryRecord) (cat category.Category, err error) {
	if record.ID == "" {
		return cat, decodeError(category.ErrCategoryIDNotGenerated)
	}
	icon := category.IconUnknown
	if record.Icon != "" {
		icon, err = category.ParseIcon(record.Icon)
		if err != nil {
			return cat, decodeError(err)
		}
	}
	color, err := category.ParseColor(record.Color)
	if err != nil {
		return cat, decodeError(err)
	}
	return category.Category{ID: category.ID(record.ID), Name: record.Name, Icon: icon, Color: color}, nil
}

type categoriesEnvelope struct {
	Version    int              `json:"version"`
	Categories []categoryRecord `json:"categories"`
	Selected   *string          `json:"selected"`
}

func EncodeCategories(registry category.Registry) (string, error) {
	list := registry.List()
	envelope := categoriesEnvelope{
		Version:    VERSION,
		Categories: make([]categoryRecord, 0, len(list)),
	}
	for _, cat := range list {
		envelope.Categories = append(envelope.Categories, encodeCategory(cat))
	}
	if id, ok := registry.SelectedID().Get(); ok {
		selected := string(id)
		envelope.Selected = &selected
	}
	return encode(envelope)
}

func DecodeCategories(data string) (registry category.Registry, err error) {
	var envelope categoriesEnvelope
	if err := json.Unmarshal([]byte(data), &envelope); err != nil {
		return registry, decodeError(err)
	}
	if err := checkVersion(envelope.Version); err != nil {
		return registry, err
	}
	categories := make([]category.Category, 0, len(envelope.Categories))
	for _, record := range envelope.Categories {
		cat, err := decodeCategory(record)
		if err != nil {
			return registry, err
		}
		categories = append(categories, cat)
	}
	selected := c.FromPointer(envelope.Selected)
	return category.NewRegistry(categories, c.NewOptional(category.ID(selected.Value), selected.IsPresent)), nil
}
