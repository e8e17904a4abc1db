package supplierorder

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/supplierorder/dto"
)

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.OrderInput) (*model.SupplierOrder, error)
	GetOrder(ctx context.Context, id int64) (*model.SupplierOrder, error)
	ListOrders(ctx context.Context) ([]model.SupplierOrder, error)
	UpdateOrder(ctx context.Context, id int64, input *dto.OrderInput) (*model.SupplierOrder, error)
	DeleteOrder(ctx context.Context, id int64) error
	ListOrdersBySupplierName(ctx context.Context, name string) ([]model.SupplierOrderWithSupplier, error)
}
