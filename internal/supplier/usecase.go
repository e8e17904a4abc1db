package supplier

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/supplier/dto"
)

type UseCase interface {
	CreateSupplier(ctx context.Context, input *dto.SupplierInput) (*model.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*model.Supplier, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, input *dto.SupplierInput) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
	SearchSuppliers(ctx context.Context, name string) ([]model.Supplier, error)
}
