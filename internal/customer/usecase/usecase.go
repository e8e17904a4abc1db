package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/comics-store-service/internal/customer"
	"github.com/fekuna/comics-store-service/internal/customer/dto"
	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/pkg/database/postgres"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo      customer.Repository
	purchases customer.PurchaseFinder
	logger    logger.ZapLogger
	now       func() time.Time
}

func NewCustomerUseCase(repo customer.Repository, purchases customer.PurchaseFinder, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:      repo,
		purchases: purchases,
		logger:    log,
		now:       time.Now,
	}
}

func (uc *customerUseCase) build(input *dto.CustomerInput) *model.Customer {
	registered := uc.now().UTC()
	if input.RegistrationDate != nil {
		registered = *input.RegistrationDate
	}
	return &model.Customer{
		UserID:           input.UserID,
		Phone:            input.Phone,
		Address:          input.Address,
		RegistrationDate: registered,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CustomerInput) (*model.Customer, error) {
	c := uc.build(input)
	if err := uc.repo.Create(ctx, c); err != nil {
		if errors.Is(err, model.ErrConflict) {
			uc.logger.Debug("user already has a customer profile",
				zap.Int64("user_id", input.UserID),
				zap.String("constraint", postgres.ConstraintName(err)),
			)
		}
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("customer %d: %w", id, model.ErrNotFound)
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, id int64, input *dto.CustomerInput) (*model.Customer, error) {
	c := uc.build(input)
	c.ID = id
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ListPurchases returns model.ErrNotFound for an unknown customer and an
// empty list for one without purchases.
func (uc *customerUseCase) ListPurchases(ctx context.Context, customerID int64) ([]model.PurchaseDetail, error) {
	if _, err := uc.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	return uc.purchases.FindByCustomer(ctx, customerID)
}
