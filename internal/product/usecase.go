package product

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	SearchProducts(ctx context.Context, name string) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)

	// ReindexProducts writes every product to the search index.
	ReindexProducts(ctx context.Context) error
	// ReindexCategory refreshes the search documents indexed under categoryID.
	ReindexCategory(ctx context.Context, categoryID int64) error
}
