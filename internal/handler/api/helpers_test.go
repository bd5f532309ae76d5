//go:build unit

package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticket-seckill/internal/domain/user"
)

// newTestEngine returns an engine whose requests are authenticated as userID.
func newTestEngine(userID uuid.UUID, role user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID)
			c.Set("user_role", role)
		}
		c.Next()
	})
	return engine
}
