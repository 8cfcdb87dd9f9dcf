package updateform

import (
	"context"
	"time"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
)

type Input struct {
	Event form.Event
}

// Validate rejects registry changes; categories and the selection are
// changed through their own operations so they get persisted.
func (i Input) Validate() error {
	switch i.Event.(type) {
	case nil:
		return form.ErrUnknownEvent
	case form.CategoryAdded, form.CategoryUpdated, form.CategoryRemoved,
		form.CategorySelected, form.CategoryDeselected:
		return form.ErrCategoryEventNotAllowed
	}
	return nil
}

type Result struct {
	State form.State
}

type service struct {
	log       logging.Logger
	form      form.Container
	publisher events.Publisher
	now       func() time.Time
}

func New(
	log logging.Logger,
	form form.Container,
	publisher events.Publisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if form == nil {
		panic(e.NewNilArgumentError("form"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, form: form, publisher: publisher, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}

	state, err := s.form.Update(ctx, func(state form.State) (form.State, error) {
		return form.Apply(state, input.Event)
	})
	if err != nil {
		return result, err
	}

	s.log.Debug(ctx, "Form updated.", logging.Entry("event", input.Event.Name()))
	services.Publish(ctx, s.log, s.publisher, events.Event{
		Name:    events.FORM_CHANGED,
		Payload: views.FromForm(state, reminder.WallClock(s.now())),
	})
	return Result{State: state}, nil
}
