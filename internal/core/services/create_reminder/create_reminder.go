package createreminder

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
)

type Input struct {
	Title       c.Optional[string]
	Description string
	DateTime    c.Optional[time.Time]
	Type        reminder.Type
	CategoryID  c.Optional[category.ID]
	RepeatDays  reminder.RepeatDays
}

func (i Input) Validate() error {
	if strings.TrimSpace(i.Description) == "" {
		return reminder.ErrReminderDescriptionRequired
	}
	if utf8.RuneCountInString(i.Description) > reminder.MAX_DESCRIPTION_LEN {
		return reminder.ErrReminderDescriptionTooLong
	}
	if utf8.RuneCountInString(i.Title.Value) > reminder.MAX_TITLE_LEN {
		return reminder.ErrReminderTitleTooLong
	}
	if !i.DateTime.IsPresent || i.DateTime.Value.IsZero() {
		return reminder.ErrReminderDateTimeRequired
	}
	return nil
}

type Result struct {
	Reminder  reminder.Reminder
	Persisted bool
}

type service struct {
	log       logging.Logger
	reminders reminder.Repository
	form      form.Container
	publisher events.Publisher
}

func New(
	log logging.Logger,
	reminders reminder.Repository,
	form form.Container,
	publisher events.Publisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if form == nil {
		panic(e.NewNilArgumentError("form"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	return &service{
		log:       log,
		reminders: reminders,
		form:      form,
		publisher: publisher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}

	createInput := reminder.CreateInput{
		Title:       input.Title.Value,
		Description: input.Description,
		DateTime:    reminder.WallClock(input.DateTime.Value),
		Type:        input.Type,
		RepeatDays:  input.RepeatDays,
	}
	if strings.TrimSpace(createInput.Title) == "" {
		createInput.Title = input.Description
	}
	if createInput.Type == reminder.TypeUnknown {
		createInput.Type = reminder.DefaultType
	}
	if input.CategoryID.IsPresent {
		cat, ok := s.form.Get(ctx).Categories.Get(input.CategoryID.Value)
		if !ok {
			return result, category.ErrCategoryDoesNotExist
		}
		createInput.Category = c.NewOptional(cat, true)
	}

	created, err := s.reminders.Create(ctx, createInput)
	switch {
	case errors.Is(err, reminder.ErrNotPersisted):
		s.log.Warning(
			ctx,
			"Reminder created but not persisted.",
			logging.Entry("reminder", created.ID),
		)
	case err != nil:
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Reminder successfully created.", logging.Entry("reminder", created.ID))
	services.Publish(ctx, s.log, s.publisher, events.Event{
		Name:    events.REMINDER_CREATED,
		Payload: views.FromReminder(created),
	})
	return Result{Reminder: created, Persisted: err == nil}, nil
}
