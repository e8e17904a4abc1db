package usecase

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/testutil"
	"github.com/fekuna/comics-store-service/internal/usertype/dto"
	"github.com/fekuna/comics-store-service/internal/usertype/repository"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These run the usecase over the real repository with a mocked connection.

func TestUserTypeLifecycle(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	uc := NewUserTypeUseCase(repository.NewPGRepository(db), logger.NewNop())
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO user_types`).WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "admin"))
	created, err := uc.CreateUserType(ctx, &dto.UserTypeInput{Name: "admin"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	mock.ExpectQuery(`UPDATE user_types SET name = \$1 WHERE id = \$2`).WithArgs("cliente", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "cliente"))
	updated, err := uc.UpdateUserType(ctx, 1, &dto.UserTypeInput{Name: "cliente"})
	require.NoError(t, err)
	assert.Equal(t, "cliente", updated.Name)

	mock.ExpectExec(`DELETE FROM user_types`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, uc.DeleteUserType(ctx, 1))

	mock.ExpectQuery(`SELECT id, name FROM user_types WHERE id = \$1`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	_, err = uc.GetUserType(ctx, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserTypeMissing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	uc := NewUserTypeUseCase(repository.NewPGRepository(db), logger.NewNop())
	ctx := context.Background()

	mock.ExpectQuery(`UPDATE user_types`).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	_, err := uc.UpdateUserType(ctx, 5, &dto.UserTypeInput{Name: "x"})
	assert.ErrorIs(t, err, model.ErrNotFound)

	mock.ExpectExec(`DELETE FROM user_types`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, uc.DeleteUserType(ctx, 5), model.ErrNotFound)
}

func TestListUserTypes(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	uc := NewUserTypeUseCase(repository.NewPGRepository(db), logger.NewNop())

	mock.ExpectQuery(`SELECT id, name FROM user_types ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "admin").AddRow(2, "cliente"))

	types, err := uc.ListUserTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.UserType{{ID: 1, Name: "admin"}, {ID: 2, Name: "cliente"}}, types)
}
