package customer

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/customer/dto"
	"github.com/fekuna/comics-store-service/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, input *dto.CustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ListPurchases(ctx context.Context, customerID int64) ([]model.PurchaseDetail, error)
}
