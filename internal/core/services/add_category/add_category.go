package addcategory

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
	identity   category.IdentityGenerator
	publisher  events.Publisher
}

func New(
	log logging.Logger,
	form form.Container,
	categories category.Repository,
	identity category.IdentityGenerator,
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
	if identity == nil {
		panic(e.NewNilArgumentError("identity"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	return &service{
		log:        log,
		form:       form,
		categories: categories,
		identity:   identity,
		publisher:  publisher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Fields.Validate(); err != nil {
		return result, err
	}
	cat, err := input.Fields.Build(s.identity.GenerateCategoryID())
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}

	persisted := false
	state, err := s.form.Update(ctx, func(state form.State) (form.State, error) {
		next, err := form.Apply(state, form.CategoryAdded{Category: cat})
		if err != nil {
			return state, err
		}
		persisted = services.SaveCategories(ctx, s.log, s.categories, next.Categories)
		return next, nil
	})
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("category", cat))
		return result, err
	}

	s.log.Info(ctx, "Category added.", logging.Entry("category", cat.ID))
	services.Publish(ctx, s.log, s.publisher, events.Event{
		Name:    events.CATEGORIES_CHANGED,
		Payload: views.FromRegistry(state.Categories),
	})
	return Result{Category: cat, Categories: state.Categories, Persisted: persisted}, nil
}
