package customer

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id int64) error
}

// PurchaseFinder is the slice of the purchase repository a customer needs.
type PurchaseFinder interface {
	FindByCustomer(ctx context.Context, customerID int64) ([]model.PurchaseDetail, error)
}
