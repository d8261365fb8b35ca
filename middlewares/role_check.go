package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/utils"
)

// RequireRoles aborts unless the authenticated role is one of the given set.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("no role found"))
			c.Abort()
			return
		}

		role, ok := roleInterface.(string)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid role"))
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, errors.New("insufficient role"))
		c.Abort()
	}
}
