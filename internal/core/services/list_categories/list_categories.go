package listcategories

import (
	"context"

	"remindu/internal/core/domain/category"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/services"
)

type Input struct{}

type Result struct {
	Categories category.Registry
}

type service struct {
	form form.Container
}

func New(form form.Container) services.Service[Input, Result] {
	if form == nil {
		panic(e.NewNilArgumentError("form"))
	}
	return &service{form: form}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	return Result{Categories: s.form.Get(ctx).Categories}, nil
}
