package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/apperrors"
	"github.com/Norne9/pravda-server/utils"
)

// AdminCheck guards the privileged route group. Must run after
// AuthMiddleware.
func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			utils.RespondAppError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
