package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/user"
	"github.com/fekuna/comics-store-service/internal/user/dto"
	"github.com/fekuna/comics-store-service/pkg/database/postgres"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type userUseCase struct {
	repo     user.Repository
	hashCost int
	logger   logger.ZapLogger
}

// NewUserUseCase builds the user usecase. hashCost is the bcrypt cost;
// values outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewUserUseCase(repo user.Repository, hashCost int, log logger.ZapLogger) user.UseCase {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return &userUseCase{
		repo:     repo,
		hashCost: hashCost,
		logger:   log,
	}
}

func (uc *userUseCase) CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	hash, err := uc.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		UserTypeID:   input.UserTypeID,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		uc.logConflict(err, input.Email)
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %d: %w", id, model.ErrNotFound)
	}
	return u, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return uc.repo.FindAll(ctx)
}

// UpdateUser is a full overwrite. Keeping the user's own email never
// conflicts; taking another user's email does.
func (uc *userUseCase) UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error) {
	hash, err := uc.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           input.ID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		UserTypeID:   input.UserTypeID,
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		uc.logConflict(err, input.Email)
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *userUseCase) logConflict(err error, email string) {
	if errors.Is(err, model.ErrConflict) {
		uc.logger.Debug("email already registered",
			zap.String("email", email),
			zap.String("constraint", postgres.ConstraintName(err)),
		)
	}
}

func (uc *userUseCase) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("password: %w", model.ErrInvalidInput)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
