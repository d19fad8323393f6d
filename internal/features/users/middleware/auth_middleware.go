package users_middleware

import (
	"net/http"
	"strings"

	users_models "spacehub-backend/internal/features/users/models"
	users_services "spacehub-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Authorization header is required"},
			)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Authorization header must be a Bearer token"},
			)
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func GetUserFromContext(c *gin.Context) (*users_models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)
	return user, ok
}
