//go:build unit

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-seckill/internal/domain/user"
	"ticket-seckill/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	userID uuid.UUID
	role   user.Role
	err    error
}

func (s stubValidator) ValidateToken(string) (uuid.UUID, user.Role, error) {
	return s.userID, s.role, s.err
}

func newAuthEngine(v stubValidator, mw ...func(*AuthMiddleware) gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(v)
	handlers := []gin.HandlerFunc{m.RequireAuth()}
	for _, f := range mw {
		handlers = append(handlers, f(m))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	})

	engine := gin.New()
	engine.GET("/protected", handlers...)
	return engine
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		validator  stubValidator
		wantStatus int
	}{
		{"valid bearer token", "Bearer good", stubValidator{userID: userID, role: user.RoleBuyer}, http.StatusOK},
		{"missing header", "", stubValidator{}, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", stubValidator{}, http.StatusUnauthorized},
		{"invalid token", "Bearer bad", stubValidator{err: jwt.ErrInvalidToken}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			newAuthEngine(tt.validator).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, userID.String(), body["user_id"])
				assert.Equal(t, "buyer", body["role"])
			}
		})
	}
}

func TestRequireRoleAtLeast(t *testing.T) {
	requireAdmin := func(m *AuthMiddleware) gin.HandlerFunc { return m.RequireRoleAtLeast(user.RoleAdmin) }

	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{"admin passes", user.RoleAdmin, http.StatusOK},
		{"buyer is forbidden", user.RoleBuyer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer token")
			w := httptest.NewRecorder()

			newAuthEngine(stubValidator{userID: uuid.New(), role: tt.role}, requireAdmin).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
