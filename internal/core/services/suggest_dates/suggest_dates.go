package suggestdates

import (
	"context"
	"time"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/services"
)

type Input struct{}

type Result struct {
	Now         time.Time
	Suggestions []reminder.Suggestion
}

type service struct {
	now func() time.Time
}

func New(now func() time.Time) services.Service[Input, Result] {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := reminder.WallClock(s.now())
	return Result{Now: now, Suggestions: reminder.Suggest(now)}, nil
}
