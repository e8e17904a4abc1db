// Package testutil holds helpers shared by handler and repository tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/comics-store-service/pkg/i18n"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// SetupRouter creates a gin router in test mode.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// NewResponder returns a responder with the bundled catalogs, Spanish default.
func NewResponder(t *testing.T) *response.Responder {
	t.Helper()
	tr, err := i18n.New("es")
	if err != nil {
		t.Fatalf("Failed to build translator: %v", err)
	}
	return response.NewResponder(tr, logger.NewNop())
}

// NewMockDB wraps a sqlmock connection in sqlx with the pgx bind style.
func NewMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet sql expectations: %v", err)
		}
		db.Close()
	})
	return sqlx.NewDb(db, "pgx"), mock
}

// DoRequest executes an HTTP request against the test router.
func DoRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Serve runs a prepared request, for tests that need custom headers.
func Serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse decodes a JSON object body.
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// ParseList decodes a JSON array body.
func ParseList(w *httptest.ResponseRecorder) []map[string]interface{} {
	var result []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

func Int64Ptr(v int64) *int64 {
	return &v
}
