package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/supplier"
	"github.com/fekuna/comics-store-service/internal/supplier/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.SupplierInput) (*model.Supplier, error) {
	s := &model.Supplier{
		Name:    input.Name,
		Contact: input.Contact,
		Phone:   input.Phone,
		Email:   input.Email,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("supplier %d: %w", id, model.ErrNotFound)
	}
	return s, nil
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, id int64, input *dto.SupplierInput) (*model.Supplier, error) {
	s := &model.Supplier{
		ID:      id,
		Name:    input.Name,
		Contact: input.Contact,
		Phone:   input.Phone,
		Email:   input.Email,
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *supplierUseCase) SearchSuppliers(ctx context.Context, name string) ([]model.Supplier, error) {
	return uc.repo.SearchByName(ctx, name)
}
