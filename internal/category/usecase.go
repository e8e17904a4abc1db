package category

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/category/dto"
	"github.com/fekuna/comics-store-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// ProductIndex keeps the product search documents in step with category
// deletes, which detach products in the database.
type ProductIndex interface {
	ReindexCategory(ctx context.Context, categoryID int64) error
}
