package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

// CurrentUserKey is the gin context key the resolved user is stored under.
const CurrentUserKey = "currentUser"

// AuthRequired gates protected endpoints. It extracts the bearer token,
// verifies signature and expiry, then resolves the identity against the
// store: a valid token whose user row has since been deleted is rejected.
func AuthRequired(tokens *utils.TokenManager, db *store.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewErrorResponse("Access token required", "AUTH_TOKEN_REQUIRED", nil))
			return
		}

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				models.NewErrorResponse("Invalid or expired token", "AUTH_TOKEN_INVALID", nil))
			return
		}

		var user models.User
		found, err := db.Get(c.Request.Context(), &user,
			"SELECT user_id, email, name, created_at FROM users WHERE user_id = ?", claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				models.NewErrorResponse("Authentication failed", "INTERNAL_ERROR", nil))
			return
		}
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewErrorResponse("Invalid token - user not found", "AUTH_USER_NOT_FOUND", nil))
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser fetches the identity attached by AuthRequired.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
