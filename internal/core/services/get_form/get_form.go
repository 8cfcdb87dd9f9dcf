package getform

import (
	"context"
	"time"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/services"
)

type Input struct{}

type Result struct {
	State       form.State
	Suggestions []reminder.Suggestion
	Now         time.Time
}

type service struct {
	form form.Container
	now  func() time.Time
}

func New(form form.Container, now func() time.Time) services.Service[Input, Result] {
	if form == nil {
		panic(e.NewNilArgumentError("form"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{form: form, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	state := s.form.Get(ctx)
	now := reminder.WallClock(s.now())
	return Result{State: state, Suggestions: state.Suggestions(now), Now: now}, nil
}
