package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"school_backend/models"
)

var testSecret = []byte("test-secret")

func newProtectedRouter(role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/")
	group.Use(AuthMiddleware(testSecret))
	group.Use(RequireRole(role))
	group.GET("/probe", func(c *gin.Context) {
		actor := Actor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newProtectedRouter(models.RoleAdmin)
	if w := request(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	r := newProtectedRouter(models.RoleAdmin)
	if w := request(r, "not.a.token"); w.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	r := newProtectedRouter(models.RoleAdmin)
	token, err := GenerateToken([]byte("other-secret"), 5, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := request(r, token); w.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareUnknownRole(t *testing.T) {
	r := newProtectedRouter(models.RoleAdmin)
	token, err := GenerateToken(testSecret, 5, models.Role("ghost"))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := request(r, token); w.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", w.Code)
	}
}

func TestRequireRoleMatch(t *testing.T) {
	r := newProtectedRouter(models.RoleAdmin)
	token, err := GenerateToken(testSecret, 5, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := request(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
}

func TestRequireRoleMismatch(t *testing.T) {
	r := newProtectedRouter(models.RoleSuperAdmin)
	token, err := GenerateToken(testSecret, 7, models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := request(r, token); w.Code != http.StatusForbidden {
		t.Errorf("got status %d, want 403", w.Code)
	}
}
