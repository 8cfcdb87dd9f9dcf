package listreminders

import (
	"context"

	c "remindu/internal/core/domain/common"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/services"
)

type Input struct {
	Date c.Optional[reminder.Date]
}

type Result struct {
	Reminders  []reminder.Reminder
	TotalCount uint
}

type service struct {
	log       logging.Logger
	reminders reminder.Repository
}

func New(log logging.Logger, reminders reminder.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	return &service{log: log, reminders: reminders}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	options := reminder.ReadOptions{DateEquals: input.Date}
	reminders, err := s.reminders.Read(ctx, options)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}
	total, err := s.reminders.Count(ctx, reminder.ReadOptions{})
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Reminders: reminders, TotalCount: total}, nil
}
