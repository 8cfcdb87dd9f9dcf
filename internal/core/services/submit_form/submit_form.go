package submitform

import (
	"context"
	"sync"
	"time"

	"remindu/internal/core/domain/category"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
	createreminder "remindu/internal/core/services/create_reminder"
)

type Input struct{}

type Result struct {
	Reminder  reminder.Reminder
	Persisted bool
	State     form.State
}

type service struct {
	log            logging.Logger
	form           form.Container
	categories     category.Repository
	createReminder services.Service[createreminder.Input, createreminder.Result]
	publisher      events.Publisher
	now            func() time.Time
	lock           sync.Mutex
}

func New(
	log logging.Logger,
	form form.Container,
	categories category.Repository,
	createReminder services.Service[createreminder.Input, createreminder.Result],
	publisher events.Publisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if form == nil {
		panic(e.NewNilArgumentError("form"))
	}
	if categories == nil {
		panic(e.NewNilArgumentError("categories"))
	}
	if createReminder == nil {
		panic(e.NewNilArgumentError("createReminder"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		form:           form,
		categories:     categories,
		createReminder: createReminder,
		publisher:      publisher,
		now:            now,
	}
}

// Run saves the form as a new reminder and resets it. A form that fails
// validation is left as it was, and so is a form edited while the
// reminder was being created.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	submitted := s.form.Get(ctx)
	state := submitted
	if err := state.Validate(); err != nil {
		return result, err
	}

	created, err := s.createReminder.Run(ctx, createreminder.Input{
		Description: state.Description,
		DateTime:    state.DateTime,
		Type:        state.Type,
		CategoryID:  state.Categories.SelectedID(),
		RepeatDays:  state.SubmittedRepeatDays(),
	})
	if err != nil {
		return result, err
	}

	state, err = s.form.Update(ctx, func(state form.State) (form.State, error) {
		if !state.Equal(submitted) {
			s.log.Info(
				ctx,
				"Form changed during submit, keeping the newer edits.",
				logging.Entry("reminder", created.Reminder.ID),
			)
			return state, nil
		}
		next, err := form.Apply(state, form.FormSubmitted{})
		if err != nil {
			return state, err
		}
		if submitted.Categories.SelectedID().IsPresent {
			services.SaveCategories(ctx, s.log, s.categories, next.Categories)
		}
		return next, nil
	})
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("reminder", created.Reminder.ID))
		return result, err
	}

	services.Publish(ctx, s.log, s.publisher, events.Event{
		Name:    events.FORM_CHANGED,
		Payload: views.FromForm(state, reminder.WallClock(s.now())),
	})
	return Result{Reminder: created.Reminder, Persisted: created.Persisted, State: state}, nil
}

