package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/purchase"
	"github.com/fekuna/comics-store-service/internal/purchase/dto"
	"github.com/fekuna/comics-store-service/pkg/broker"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"go.uber.org/zap"
)

const EventPurchaseRecorded = "PurchaseRecorded"

type purchaseUseCase struct {
	repo      purchase.Repository
	publisher broker.Publisher
	logger    logger.ZapLogger
}

// NewPurchaseUseCase builds the usecase. publisher may be nil.
func NewPurchaseUseCase(repo purchase.Repository, publisher broker.Publisher, log logger.ZapLogger) purchase.UseCase {
	return &purchaseUseCase{
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

func validate(input *dto.PurchaseInput) error {
	if input.Quantity <= 0 {
		return fmt.Errorf("quantity %d: %w", input.Quantity, model.ErrInvalidInput)
	}
	if input.UnitPrice.IsNegative() {
		return fmt.Errorf("unit price %s: %w", input.UnitPrice, model.ErrInvalidInput)
	}
	return nil
}

func (uc *purchaseUseCase) CreatePurchase(ctx context.Context, input *dto.PurchaseInput) (*model.PurchaseDetail, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	d := &model.PurchaseDetail{
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		CustomerID: input.CustomerID,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		event := broker.NewEvent(EventPurchaseRecorded, strconv.FormatInt(d.ProductID, 10), d)
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.logger.Error("failed to publish purchase event", zap.Int64("purchase_id", d.ID), zap.Error(err))
		}
	}
	return d, nil
}

func (uc *purchaseUseCase) GetPurchase(ctx context.Context, id int64) (*model.PurchaseDetail, error) {
	d, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("purchase detail %d: %w", id, model.ErrNotFound)
	}
	return d, nil
}

func (uc *purchaseUseCase) ListPurchases(ctx context.Context) ([]model.PurchaseDetail, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *purchaseUseCase) UpdatePurchase(ctx context.Context, id int64, input *dto.PurchaseInput) (*model.PurchaseDetail, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	d := &model.PurchaseDetail{
		ID:         id,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		CustomerID: input.CustomerID,
	}
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *purchaseUseCase) DeletePurchase(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
