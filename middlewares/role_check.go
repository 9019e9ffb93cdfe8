package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/utils"
)

// AdminOnly gates the admin surface. Must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, models.ErrNotAuthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
