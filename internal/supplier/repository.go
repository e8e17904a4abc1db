package supplier

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	FindAll(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, name string) ([]model.Supplier, error)
}
