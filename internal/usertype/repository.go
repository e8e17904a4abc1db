package usertype

import (
	"context"

	"github.com/fekuna/comics-store-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, userType *model.UserType) error
	FindByID(ctx context.Context, id int64) (*model.UserType, error)
	FindAll(ctx context.Context) ([]model.UserType, error)
	Update(ctx context.Context, userType *model.UserType) error
	Delete(ctx context.Context, id int64) error
}
