package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/comics-store-service/pkg/apperror"
	"github.com/fekuna/comics-store-service/pkg/i18n"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userMessages = Messages{NotFound: "user.not_found", Conflict: "user.email_taken", Deleted: "user.deleted"}

func run(t *testing.T, lang string, h func(r *Responder, c *gin.Context)) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tr, err := i18n.New("es")
	require.NoError(t, err)
	r := NewResponder(tr, logger.NewNop())

	router := gin.New()
	router.GET("/x", func(c *gin.Context) { h(r, c) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"not found", fmt.Errorf("get user 9: %w", apperror.ErrNotFound), http.StatusNotFound, "Usuario no encontrado"},
		{"conflict", fmt.Errorf("%w: users_email_key", apperror.ErrConflict), http.StatusBadRequest, "El correo ya está registrado"},
		{"invalid reference", apperror.ErrInvalidReference, http.StatusBadRequest, "El registro referenciado no existe o sigue en uso"},
		{"invalid input", apperror.ErrInvalidInput, http.StatusBadRequest, "Datos inválidos"},
		{"unexpected", errors.New("dial tcp: refused"), http.StatusInternalServerError, "Error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := run(t, "", func(r *Responder, c *gin.Context) { r.Error(c, tt.err, userMessages) })

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.detail, body["detail"])
		})
	}
}

func TestErrorDoesNotLeakInternalDetails(t *testing.T) {
	_, body := run(t, "en", func(r *Responder, c *gin.Context) {
		r.Error(c, errors.New("password authentication failed for user comics"), Messages{})
	})

	assert.Equal(t, "Internal server error", body["detail"])
}

func TestDeletedUsesEntityMessage(t *testing.T) {
	w, body := run(t, "en", func(r *Responder, c *gin.Context) { r.Deleted(c, userMessages) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully", body["message"])
}

func TestConflictFallsBackToCommonMessage(t *testing.T) {
	_, body := run(t, "en", func(r *Responder, c *gin.Context) { r.Error(c, apperror.ErrConflict, Messages{}) })

	assert.Equal(t, "Record already exists", body["detail"])
}

func TestBadRequest(t *testing.T) {
	w, body := run(t, "en", func(r *Responder, c *gin.Context) { r.BadRequest(c, errors.New("id must be an integer")) })

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request: id must be an integer", body["detail"])
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var got int64
	var gotErr error
	router.GET("/x/:id", func(c *gin.Context) { got, gotErr = ParseID(c, "id") })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/42", nil))
	assert.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	for _, bad := range []string{"abc", "0", "-3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/"+bad, nil))
		assert.Error(t, gotErr, bad)
	}
}
