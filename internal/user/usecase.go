package user

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/user/dto"
)

type UseCase interface {
	CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
