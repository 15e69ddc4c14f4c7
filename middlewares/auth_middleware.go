package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/services"
	"github.com/Norne9/pravda-server/utils"
)

const userKey = "currentUser"

// AuthMiddleware resolves the bearer token to a concrete user and stores
// it on the context. Tokens are opaque: resolution is a store lookup, so
// a token rotated away by a later login or reset stops working at once.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		user, err := auth.ResolveToken(token)
		if err != nil {
			utils.RespondAppError(c, err)
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user placed on the context by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
