package purchase

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, detail *model.PurchaseDetail) error
	FindByID(ctx context.Context, id int64) (*model.PurchaseDetail, error)
	FindAll(ctx context.Context) ([]model.PurchaseDetail, error)
	Update(ctx context.Context, detail *model.PurchaseDetail) error
	Delete(ctx context.Context, id int64) error
	FindByCustomer(ctx context.Context, customerID int64) ([]model.PurchaseDetail, error)
}
