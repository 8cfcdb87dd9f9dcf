// Package views renders domain state as JSON documents for the HTTP API,
// the MCP tools and published events.
package views

import (
	"time"

	"remindu/internal/core/domain/category"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/reminder"
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func FromCategory(cat category.Category) Category {
	return Category{
		ID:    string(cat.ID),
		Name:  cat.Name,
		Icon:  cat.Icon.String(),
		Color: cat.Color.String(),
	}
}

type Categories struct {
	Categories []Category `json:"categories"`
	Selected   *string    `json:"selected"`
}

func FromRegistry(registry category.Registry) Categories {
	list := registry.List()
	v := Categories{Categories: make([]Category, 0, len(list))}
	for _, cat := range list {
		v.Categories = append(v.Categories, FromCategory(cat))
	}
	if id, ok := registry.SelectedID().Get(); ok {
		selected := string(id)
		v.Selected = &selected
	}
	return v
}

type Reminder struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DateTime      string    `json:"dateTime"`
	Type          string    `json:"type"`
	Category      *Category `json:"category"`
	IsCompleted   bool      `json:"isCompleted"`
	RepeatDays    []int     `json:"repeatDays"`
	RepeatSummary string    `json:"repeatSummary"`
}

func FromReminder(r reminder.Reminder) Reminder {
	v := Reminder{
		ID:            string(r.ID),
		Title:         r.Title,
		Description:   r.Description,
		DateTime:      reminder.FormatDateTime(r.DateTime),
		Type:          r.Type.String(),
		IsCompleted:   r.IsCompleted,
		RepeatDays:    r.RepeatDays.Ints(),
		RepeatSummary: r.RepeatDays.Summary(),
	}
	if cat, ok := r.Category.Get(); ok {
		c := FromCategory(cat)
		v.Category = &c
	}
	return v
}

func FromReminders(reminders []reminder.Reminder) []Reminder {
	result := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		result = append(result, FromReminder(r))
	}
	return result
}

type Suggestion struct {
	Kind    string `json:"kind"`
	Label   string `json:"label"`
	At      string `json:"at"`
	Caption string `json:"caption"`
}

func FromSuggestions(suggestions []reminder.Suggestion) []Suggestion {
	result := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		result = append(result, Suggestion{
			Kind:    s.Kind.String(),
			Label:   s.Label,
			At:      reminder.FormatDateTime(s.At),
			Caption: s.Caption,
		})
	}
	return result
}

type RepeatDialog struct {
	Days    []int  `json:"days"`
	Summary string `json:"summary"`
}

type Form struct {
	Phase         string        `json:"phase"`
	Description   string        `json:"description"`
	DateTime      *string       `json:"dateTime"`
	Type          string        `json:"type"`
	RepeatEnabled bool          `json:"repeatEnabled"`
	RepeatDays    []int         `json:"repeatDays"`
	RepeatSummary string        `json:"repeatSummary"`
	RepeatDialog  *RepeatDialog `json:"repeatDialog"`
	Categories    Categories    `json:"categories"`
	Suggestions   []Suggestion  `json:"suggestions"`
}

func FromForm(s form.State, now time.Time) Form {
	v := Form{
		Phase:         s.Phase().String(),
		Description:   s.Description,
		Type:          s.Type.String(),
		RepeatEnabled: s.RepeatEnabled,
		RepeatDays:    s.RepeatDays.Ints(),
		RepeatSummary: s.RepeatSummary(),
		Categories:    FromRegistry(s.Categories),
		Suggestions:   FromSuggestions(s.Suggestions(now)),
	}
	if at, ok := s.DateTime.Get(); ok {
		formatted := reminder.FormatDateTime(at)
		v.DateTime = &formatted
	}
	if draft, ok := s.RepeatDialog.Get(); ok {
		v.RepeatDialog = &RepeatDialog{Days: draft.Ints(), Summary: draft.Summary()}
	}
	return v
}
