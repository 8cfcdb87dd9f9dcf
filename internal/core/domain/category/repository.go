package category

import "context"

type Repository interface {
	Load(ctx context.Context) (Registry, error)
	Save(ctx context.Context, registry Registry) error
}
