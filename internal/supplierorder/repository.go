package supplierorder

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, order *model.SupplierOrder) error
	FindByID(ctx context.Context, id int64) (*model.SupplierOrder, error)
	FindAll(ctx context.Context) ([]model.SupplierOrder, error)
	Update(ctx context.Context, order *model.SupplierOrder) error
	Delete(ctx context.Context, id int64) error

	// FindBySupplierName joins orders with suppliers on an exact name match.
	FindBySupplierName(ctx context.Context, name string) ([]model.SupplierOrderWithSupplier, error)
}
