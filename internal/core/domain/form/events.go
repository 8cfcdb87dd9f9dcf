package form

import (
	"time"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	"remindu/internal/core/domain/reminder"
)

// Event is a single change requested by the user on the form.
type Event interface {
	Name() string
	apply(s State) (State, error)
}

// Apply returns the state after ev. On error the returned state is s.
func Apply(s State, ev Event) (State, error) {
	next, err := ev.apply(s)
	if err != nil {
		return s, err
	}
	return next, nil
}

type DescriptionChanged struct {
	Description string
}

func (DescriptionChanged) Name() string { return "description_changed" }

func (ev DescriptionChanged) apply(s State) (State, error) {
	if len([]rune(ev.Description)) > reminder.MAX_DESCRIPTION_LEN {
		return s, reminder.ErrReminderDescriptionTooLong
	}
	s.Description = ev.Description
	return s, nil
}

type DateTimeSelected struct {
	DateTime time.Time
}

func (DateTimeSelected) Name() string { return "date_time_selected" }

func (ev DateTimeSelected) apply(s State) (State, error) {
	if ev.DateTime.IsZero() {
		return s, reminder.ErrReminderDateTimeRequired
	}
	s.DateTime = c.NewOptional(reminder.WallClock(ev.DateTime), true)
	return s, nil
}

type DateTimeCleared struct{}

func (DateTimeCleared) Name() string { return "date_time_cleared" }

func (DateTimeCleared) apply(s State) (State, error) {
	s.DateTime = c.Optional[time.Time]{}
	return s, nil
}

type TypeSelected struct {
	Type reminder.Type
}

func (TypeSelected) Name() string { return "type_selected" }

func (ev TypeSelected) apply(s State) (State, error) {
	if ev.Type == reminder.TypeUnknown {
		return s, reminder.ErrParseType
	}
	s.Type = ev.Type
	return s, nil
}

type CategoryAdded struct {
	Category category.Category
}

func (CategoryAdded) Name() string { return "category_added" }

func (ev CategoryAdded) apply(s State) (State, error) {
	registry, err := s.Categories.Add(ev.Category)
	if err != nil {
		return s, err
	}
	s.Categories = registry
	return s, nil
}

type CategoryUpdated struct {
	ID       category.ID
	Category category.Category
}

func (CategoryUpdated) Name() string { return "category_updated" }

func (ev CategoryUpdated) apply(s State) (State, error) {
	registry, err := s.Categories.Update(ev.ID, ev.Category)
	if err != nil {
		return s, err
	}
	s.Categories = registry
	return s, nil
}

type CategoryRemoved struct {
	ID category.ID
}

func (CategoryRemoved) Name() string { return "category_removed" }

func (ev CategoryRemoved) apply(s State) (State, error) {
	registry, err := s.Categories.Remove(ev.ID)
	if err != nil {
		return s, err
	}
	s.Categories = registry
	return s, nil
}

type CategorySelected struct {
	ID category.ID
}

func (CategorySelected) Name() string { return "category_selected" }

func (ev CategorySelected) apply(s State) (State, error) {
	registry, err := s.Categories.Select(ev.ID)
	if err != nil {
		return s, err
	}
	s.Categories = registry
	return s, nil
}

type CategoryDeselected struct{}

func (CategoryDeselected) Name() string { return "category_deselected" }

func (CategoryDeselected) apply(s State) (State, error) {
	s.Categories = s.Categories.Deselect()
	return s, nil
}

// RepeatToggled switches repeating on or off. Switching on opens the
// repeat dialog with the stored days, switching off forgets them.
type RepeatToggled struct {
	Enabled bool
}

func (RepeatToggled) Name() string { return "repeat_toggled" }

func (ev RepeatToggled) apply(s State) (State, error) {
	if ev.Enabled {
		s.RepeatEnabled = true
		s.RepeatDialog = c.NewOptional(s.RepeatDays, true)
		return s, nil
	}
	s.RepeatEnabled = false
	s.RepeatDays = reminder.NoRepeatDays
	s.RepeatDialog = c.Optional[reminder.RepeatDays]{}
	return s, nil
}

type RepeatDialogOpened struct{}

func (RepeatDialogOpened) Name() string { return "repeat_dialog_opened" }

func (RepeatDialogOpened) apply(s State) (State, error) {
	s.RepeatDialog = c.NewOptional(s.RepeatDays, true)
	return s, nil
}

type RepeatDayToggled struct {
	Day reminder.Weekday
}

func (RepeatDayToggled) Name() string { return "repeat_day_toggled" }

func (ev RepeatDayToggled) apply(s State) (State, error) {
	if !ev.Day.IsValid() {
		return s, reminder.ErrInvalidRepeatDay
	}
	return editDraft(s, func(d reminder.RepeatDays) reminder.RepeatDays {
		return d.Toggle(ev.Day)
	})
}

type RepeatAllSelected struct{}

func (RepeatAllSelected) Name() string { return "repeat_all_selected" }

func (RepeatAllSelected) apply(s State) (State, error) {
	return editDraft(s, reminder.RepeatDays.SelectAll)
}

type RepeatCleared struct{}

func (RepeatCleared) Name() string { return "repeat_cleared" }

func (RepeatCleared) apply(s State) (State, error) {
	return editDraft(s, reminder.RepeatDays.Clear)
}

// RepeatDialogConfirmed stores the draft. Repeating stays on only when at
// least one day was chosen.
type RepeatDialogConfirmed struct{}

func (RepeatDialogConfirmed) Name() string { return "repeat_dialog_confirmed" }

func (RepeatDialogConfirmed) apply(s State) (State, error) {
	if !s.RepeatDialog.IsPresent {
		return s, ErrRepeatDialogClosed
	}
	s.RepeatDays = s.RepeatDialog.Value
	s.RepeatEnabled = !s.RepeatDays.IsEmpty()
	s.RepeatDialog = c.Optional[reminder.RepeatDays]{}
	return s, nil
}

// RepeatDialogDismissed drops the draft. With no stored days repeating is
// switched back off.
type RepeatDialogDismissed struct{}

func (RepeatDialogDismissed) Name() string { return "repeat_dialog_dismissed" }

func (RepeatDialogDismissed) apply(s State) (State, error) {
	s.RepeatDialog = c.Optional[reminder.RepeatDays]{}
	if s.RepeatDays.IsEmpty() {
		s.RepeatEnabled = false
	}
	return s, nil
}

type FormSubmitted struct{}

func (FormSubmitted) Name() string { return "form_submitted" }

func (FormSubmitted) apply(s State) (State, error) {
	return s.Reset(), nil
}

func editDraft(s State, edit func(reminder.RepeatDays) reminder.RepeatDays) (State, error) {
	if !s.RepeatDialog.IsPresent {
		return s, ErrRepeatDialogClosed
	}
	s.RepeatDialog = c.NewOptional(edit(s.RepeatDialog.Value), true)
	return s, nil
}
