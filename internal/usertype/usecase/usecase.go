package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/usertype"
	"github.com/fekuna/comics-store-service/internal/usertype/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
)

type userTypeUseCase struct {
	repo   usertype.Repository
	logger logger.ZapLogger
}

func NewUserTypeUseCase(repo usertype.Repository, log logger.ZapLogger) usertype.UseCase {
	return &userTypeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *userTypeUseCase) CreateUserType(ctx context.Context, input *dto.UserTypeInput) (*model.UserType, error) {
	t := &model.UserType{Name: input.Name}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *userTypeUseCase) GetUserType(ctx context.Context, id int64) (*model.UserType, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("user type %d: %w", id, model.ErrNotFound)
	}
	return t, nil
}

func (uc *userTypeUseCase) ListUserTypes(ctx context.Context) ([]model.UserType, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *userTypeUseCase) UpdateUserType(ctx context.Context, id int64, input *dto.UserTypeInput) (*model.UserType, error) {
	t := &model.UserType{ID: id, Name: input.Name}
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *userTypeUseCase) DeleteUserType(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
