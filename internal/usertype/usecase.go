package usertype

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/usertype/dto"
)

type UseCase interface {
	CreateUserType(ctx context.Context, input *dto.UserTypeInput) (*model.UserType, error)
	GetUserType(ctx context.Context, id int64) (*model.UserType, error)
	ListUserTypes(ctx context.Context) ([]model.UserType, error)
	UpdateUserType(ctx context.Context, id int64, input *dto.UserTypeInput) (*model.UserType, error)
	DeleteUserType(ctx context.Context, id int64) error
}
