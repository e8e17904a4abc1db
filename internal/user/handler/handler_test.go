package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/testutil"
	"github.com/fekuna/comics-store-service/internal/user/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	users       map[int64]model.User
	lastCreate  *dto.CreateUserInput
	lastUpdate  *dto.UpdateUserInput
	createError error
}

func (f *fakeUseCase) CreateUser(_ context.Context, in *dto.CreateUserInput) (*model.User, error) {
	f.lastCreate = in
	if f.createError != nil {
		return nil, f.createError
	}
	u := model.User{ID: int64(len(f.users) + 1), Name: in.Name, Email: in.Email, PasswordHash: "$2a$hash", UserTypeID: in.UserTypeID}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUseCase) GetUser(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUseCase) ListUsers(_ context.Context) ([]model.User, error) {
	out := []model.User{}
	for i := int64(1); i <= int64(len(f.users)); i++ {
		out = append(out, f.users[i])
	}
	return out, nil
}

func (f *fakeUseCase) UpdateUser(_ context.Context, in *dto.UpdateUserInput) (*model.User, error) {
	f.lastUpdate = in
	if _, ok := f.users[in.ID]; !ok {
		return nil, model.ErrNotFound
	}
	for id, u := range f.users {
		if id != in.ID && u.Email == in.Email {
			return nil, model.ErrConflict
		}
	}
	u := model.User{ID: in.ID, Name: in.Name, Email: in.Email, PasswordHash: "$2a$new", UserTypeID: in.UserTypeID}
	f.users[in.ID] = u
	return &u, nil
}

func (f *fakeUseCase) DeleteUser(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func setupUserTest(t *testing.T) (*gin.Engine, *fakeUseCase) {
	t.Helper()
	uc := &fakeUseCase{users: map[int64]model.User{}}
	router := testutil.SetupRouter()
	NewUserHandler(uc, testutil.NewResponder(t), logger.NewNop()).RegisterRoutes(router)
	return router, uc
}

func TestCreateAndGetUser(t *testing.T) {
	router, uc := setupUserTest(t)

	w := testutil.DoRequest(router, http.MethodPost, "/usuarios/agregar", map[string]interface{}{
		"name": "Ana", "email": "ana@example.com", "password": "s3cret", "user_type_id": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")
	assert.Equal(t, "s3cret", uc.lastCreate.Password)
	assert.Equal(t, int64(2), *uc.lastCreate.UserTypeID)

	created := testutil.ParseResponse(w)
	assert.Equal(t, float64(1), created["id"])

	w = testutil.DoRequest(router, http.MethodGet, "/usuario/buscar/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana@example.com", testutil.ParseResponse(w)["email"])
}

func TestCreateUserConflictIs400(t *testing.T) {
	router, uc := setupUserTest(t)
	uc.createError = model.ErrConflict

	w := testutil.DoRequest(router, http.MethodPost, "/usuarios/agregar", map[string]interface{}{
		"name": "Ana", "email": "ana@example.com", "password": "x",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "El correo ya está registrado", testutil.ParseResponse(w)["detail"])
}

func TestCreateUserRejectsMalformedBody(t *testing.T) {
	router, uc := setupUserTest(t)

	w := testutil.DoRequest(router, http.MethodPost, "/usuarios/agregar", map[string]interface{}{"name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.DoRequest(router, http.MethodPost, "/usuarios/agregar", `{"name": "Ana",`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.lastCreate)
}

func TestCreateUserRejectsMalformedEmail(t *testing.T) {
	router, uc := setupUserTest(t)

	w := testutil.DoRequest(router, http.MethodPost, "/usuarios/agregar", map[string]interface{}{
		"name": "Ana", "email": "ana-at-example", "password": "s3cret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.lastCreate)
}

func TestGetUserNotFound(t *testing.T) {
	router, _ := setupUserTest(t)

	w := testutil.DoRequest(router, http.MethodGet, "/usuario/buscar/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuario no encontrado", testutil.ParseResponse(w)["detail"])
}

func TestGetUserBadID(t *testing.T) {
	router, _ := setupUserTest(t)

	w := testutil.DoRequest(router, http.MethodGet, "/usuario/buscar/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUser(t *testing.T) {
	router, uc := setupUserTest(t)
	uc.users[1] = model.User{ID: 1, Name: "Ana", Email: "ana@example.com"}
	uc.users[2] = model.User{ID: 2, Name: "Beto", Email: "beto@example.com"}

	w := testutil.DoRequest(router, http.MethodPut, "/usuarios/actualizar/1", map[string]interface{}{
		"name": "Ana M", "email": "ana@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Ana M", testutil.ParseResponse(w)["name"])
	assert.Equal(t, int64(1), uc.lastUpdate.ID)

	w = testutil.DoRequest(router, http.MethodPut, "/usuarios/actualizar/1", map[string]interface{}{
		"name": "Ana", "email": "beto@example.com", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.DoRequest(router, http.MethodPut, "/usuarios/actualizar/9", map[string]interface{}{
		"name": "X", "email": "x@example.com", "password": "pw",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	router, uc := setupUserTest(t)
	uc.users[1] = model.User{ID: 1, Name: "Ana", Email: "ana@example.com"}

	w := testutil.DoRequest(router, http.MethodDelete, "/usuarios/borrar/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Usuario eliminado correctamente", testutil.ParseResponse(w)["message"])

	w = testutil.DoRequest(router, http.MethodGet, "/usuario/buscar/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.DoRequest(router, http.MethodDelete, "/usuarios/borrar/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsersEmptyArray(t *testing.T) {
	router, _ := setupUserTest(t)

	w := testutil.DoRequest(router, http.MethodGet, "/usuarios", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
