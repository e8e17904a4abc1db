package purchase

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/purchase/dto"
)

type UseCase interface {
	CreatePurchase(ctx context.Context, input *dto.PurchaseInput) (*model.PurchaseDetail, error)
	GetPurchase(ctx context.Context, id int64) (*model.PurchaseDetail, error)
	ListPurchases(ctx context.Context) ([]model.PurchaseDetail, error)
	UpdatePurchase(ctx context.Context, id int64, input *dto.PurchaseInput) (*model.PurchaseDetail, error)
	DeletePurchase(ctx context.Context, id int64) error
}
