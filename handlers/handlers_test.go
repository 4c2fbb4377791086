package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"school_backend/middleware"
	"school_backend/models"
	"school_backend/routes"
)

var testSecret = []byte("test-secret")

var (
	classColumns   = []string{"id", "name", "admin_id", "admin_name", "created_at"}
	studentColumns = []string{"id", "student_code", "full_name", "email", "class_id", "created_at"}
)

// newTestServer wires the full router against a mocked database.
func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := gin.New()
	routes.SetupRoutes(r, db, testSecret)
	return r, mock
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, userID int, role models.Role) string {
	t.Helper()
	token, err := middleware.GenerateToken(testSecret, userID, role)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func noRows(columns ...string) *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}
