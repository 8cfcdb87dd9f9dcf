package updatecategory

import (
	"context"

	"remindu/internal/core/domain/category"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
)

type Input struct {
	ID     category.ID
	Fields category.Fields
}

type Result struct {
	Category   category.Category
	Categories category.Registry
	Persisted  bool
}

type service struct {
	log        logging.Logger
	form       form.Container
	categories category.Repository
	publisher  events.Publisher
}

func New(
	log logging.Logger,
	form form.Container,
	categories category.Repository,
	publisher events.Publisher,
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
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	return &service{log: log, form: form, categories: categories, publisher: publisher}
}

// Run replaces the category in place. Reminders already carrying the old
// category keep their copy.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	cat, err := input.Fields.Build(input.ID)
	if err != nil {
		return result, err
	}

	persisted := false
	state, err := s.form.Update(ctx, func(state form.State) (form.State, error) {
		next, err := form.Apply(state, form.CategoryUpdated{ID: input.ID, Category: cat})
		if err != nil {
			return state, err
		}
		persisted = services.SaveCategories(ctx, s.log, s.categories, next.Categories)
		return next, nil
	})
	if err != nil {
		return result, err
	}

	s.log.Info(ctx, "Category updated.", logging.Entry("category", cat.ID))
	services.Publish(ctx, s.log, s.publisher, events.Event{
		Name:    events.CATEGORIES_CHANGED,
		Payload: views.FromRegistry(state.Categories),
	})
	return Result{Category: cat, Categories: state.Categories, Persisted: persisted}, nil
}
