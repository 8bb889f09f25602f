package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"recipe-app-api/internal/constants"
	apierrors "recipe-app-api/internal/errors"
	"recipe-app-api/internal/models"
	"recipe-app-api/internal/services"
)

// RequireAuth authenticates requests via the Authorization header
// ("Token <key>") and stores the resolved user on the gin context.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := extractTokenKey(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := authService.ResolveToken(key)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, *user)
		c.Next()
	}
}

func extractTokenKey(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], constants.AuthScheme) {
		return "", false
	}

	key := strings.TrimSpace(parts[1])
	if key == "" {
		return "", false
	}
	return key, true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetUser retrieves the current user model from context
func GetUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}
