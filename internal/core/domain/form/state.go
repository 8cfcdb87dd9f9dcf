package form

import (
	"strings"
	"time"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	"remindu/internal/core/domain/reminder"
)

type Phase struct {
	v string
}

func (p Phase) String() string {
	return p.v
}

var (
	PhaseIdle    = Phase{v: "idle"}
	PhaseEditing = Phase{v: "editing"}
)

// State is the reminder form being edited together with the category
// registry the form picks from.
type State struct {
	Description   string
	DateTime      c.Optional[time.Time]
	Type          reminder.Type
	RepeatEnabled bool
	RepeatDays    reminder.RepeatDays
	// RepeatDialog holds the draft selection while the repeat dialog is open.
	RepeatDialog c.Optional[reminder.RepeatDays]
	Categories   category.Registry
}

func NewState(categories category.Registry) State {
	return State{Type: reminder.DefaultType, Categories: categories}
}

func (s State) Phase() Phase {
	if s.Description != "" ||
		s.DateTime.IsPresent ||
		s.Type != reminder.DefaultType ||
		s.RepeatEnabled ||
		!s.RepeatDays.IsEmpty() ||
		s.RepeatDialog.IsPresent ||
		s.Categories.SelectedID().IsPresent {
		return PhaseEditing
	}
	return PhaseIdle
}

// Suggestions are offered only until a date and time is chosen.
func (s State) Suggestions(now time.Time) []reminder.Suggestion {
	if s.DateTime.IsPresent {
		return []reminder.Suggestion{}
	}
	return reminder.Suggest(now)
}

func (s State) RepeatSummary() string {
	if !s.RepeatEnabled {
		return ""
	}
	return s.RepeatDays.Summary()
}

// SubmittedRepeatDays are the days a reminder created from the form recurs on.
func (s State) SubmittedRepeatDays() reminder.RepeatDays {
	if !s.RepeatEnabled {
		return reminder.NoRepeatDays
	}
	return s.RepeatDays
}

// Validate checks the form can be saved: a description is entered and a
// date and time is selected.
func (s State) Validate() error {
	if strings.TrimSpace(s.Description) == "" {
		return reminder.ErrReminderDescriptionRequired
	}
	if !s.DateTime.IsPresent {
		return reminder.ErrReminderDateTimeRequired
	}
	return nil
}

// Reset returns the initial form keeping the known categories.
func (s State) Reset() State {
	return NewState(s.Categories.Deselect())
}

// Equal reports whether both states describe the same form and registry.
func (s State) Equal(other State) bool {
	return s.Description == other.Description &&
		s.DateTime.IsPresent == other.DateTime.IsPresent &&
		s.DateTime.Value.Equal(other.DateTime.Value) &&
		s.Type == other.Type &&
		s.RepeatEnabled == other.RepeatEnabled &&
		s.RepeatDays == other.RepeatDays &&
		s.RepeatDialog == other.RepeatDialog &&
		s.Categories.Identical(other.Categories)
}
