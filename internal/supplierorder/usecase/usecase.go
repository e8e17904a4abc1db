package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/supplierorder"
	"github.com/fekuna/comics-store-service/internal/supplierorder/dto"
	"github.com/fekuna/comics-store-service/pkg/broker"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	EventOrderCreated = "SupplierOrderCreated"
	EventOrderUpdated = "SupplierOrderUpdated"
)

type supplierOrderUseCase struct {
	repo      supplierorder.Repository
	publisher broker.Publisher
	logger    logger.ZapLogger
	now       func() time.Time
}

// NewSupplierOrderUseCase builds the usecase. publisher may be nil.
func NewSupplierOrderUseCase(repo supplierorder.Repository, publisher broker.Publisher, log logger.ZapLogger) supplierorder.UseCase {
	return &supplierOrderUseCase{
		repo:      repo,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
	}
}

func (uc *supplierOrderUseCase) CreateOrder(ctx context.Context, input *dto.OrderInput) (*model.SupplierOrder, error) {
	o, err := uc.buildOrder(input)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.publish(ctx, EventOrderCreated, o)
	return o, nil
}

func (uc *supplierOrderUseCase) GetOrder(ctx context.Context, id int64) (*model.SupplierOrder, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("supplier order %d: %w", id, model.ErrNotFound)
	}
	return o, nil
}

func (uc *supplierOrderUseCase) ListOrders(ctx context.Context) ([]model.SupplierOrder, error) {
	return uc.repo.FindAll(ctx)
}

// UpdateOrder overwrites every field, applying the same defaults as create.
func (uc *supplierOrderUseCase) UpdateOrder(ctx context.Context, id int64, input *dto.OrderInput) (*model.SupplierOrder, error) {
	o, err := uc.buildOrder(input)
	if err != nil {
		return nil, err
	}
	o.ID = id
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.publish(ctx, EventOrderUpdated, o)
	return o, nil
}

func (uc *supplierOrderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *supplierOrderUseCase) ListOrdersBySupplierName(ctx context.Context, name string) ([]model.SupplierOrderWithSupplier, error) {
	orders, err := uc.repo.FindBySupplierName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("orders for supplier %q: %w", name, model.ErrNotFound)
	}
	return orders, nil
}

func (uc *supplierOrderUseCase) buildOrder(input *dto.OrderInput) (*model.SupplierOrder, error) {
	status := input.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, model.ErrInvalidInput)
	}

	date := uc.now().UTC()
	if input.PurchaseDate != nil {
		date = *input.PurchaseDate
	}

	return &model.SupplierOrder{
		SupplierID:   input.SupplierID,
		PurchaseDate: date,
		Status:       status,
	}, nil
}

// publish is best effort; the order is already stored.
func (uc *supplierOrderUseCase) publish(ctx context.Context, eventType string, o *model.SupplierOrder) {
	if uc.publisher == nil {
		return
	}
	event := broker.NewEvent(eventType, strconv.FormatInt(o.SupplierID, 10), o)
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("failed to publish supplier order event",
			zap.String("event_type", eventType),
			zap.Int64("order_id", o.ID),
			zap.Error(err),
		)
	}
}
