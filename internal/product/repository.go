package product

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	// Case-insensitive substring match on name, at most limit rows.
	SearchByName(ctx context.Context, name string, limit int) ([]model.Product, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
}
