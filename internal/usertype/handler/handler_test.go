package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/comics-store-service/internal/testutil"
	"github.com/fekuna/comics-store-service/internal/usertype/repository"
	"github.com/fekuna/comics-store-service/internal/usertype/usecase"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserTypeTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := testutil.NewMockDB(t)
	uc := usecase.NewUserTypeUseCase(repository.NewPGRepository(db), logger.NewNop())
	router := testutil.SetupRouter()
	NewUserTypeHandler(uc, testutil.NewResponder(t), logger.NewNop()).RegisterRoutes(router)
	return router, mock
}

func TestListUserTypes(t *testing.T) {
	router, mock := setupUserTypeTest(t)
	mock.ExpectQuery(`SELECT id, name FROM user_types ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "admin").AddRow(2, "cliente"))

	w := testutil.DoRequest(router, http.MethodGet, "/tipos_usuario", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"admin"},{"id":2,"name":"cliente"}]`, w.Body.String())
}

func TestGetUserTypeNotFoundInEnglish(t *testing.T) {
	router, mock := setupUserTypeTest(t)
	mock.ExpectQuery(`FROM user_types WHERE id = \$1`).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	req, _ := http.NewRequest(http.MethodGet, "/tipo_usuario/buscar/5", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	w := testutil.Serve(router, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User type not found", testutil.ParseResponse(w)["detail"])
}

func TestDeleteUserTypeMissing(t *testing.T) {
	router, mock := setupUserTypeTest(t)
	mock.ExpectExec(`DELETE FROM user_types WHERE id = \$1`).WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := testutil.DoRequest(router, http.MethodDelete, "/tipos_usuario/borrar/1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tipo de usuario no encontrado", testutil.ParseResponse(w)["detail"])
}

func TestCreateUserTypeRequiresName(t *testing.T) {
	router, _ := setupUserTypeTest(t)

	w := testutil.DoRequest(router, http.MethodPost, "/tipos_usuario/agregar", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
