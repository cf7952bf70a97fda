package middleware

import (
	"errors"
	"net/http"
	"strings"

	"expense-tracker-be/internal/entities"
	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/repository"
	"expense-tracker-be/internal/token"

	"github.com/gin-gonic/gin"
)

// userContextKey is where the authenticated user is stored in the gin context.
const userContextKey = "currentUser"

// AuthMiddleware extracts a bearer token, verifies it, loads the matching user
// and binds a sanitized user record to the request context. Any verification
// failure is a 401; unexpected repository failures are a 500.
func AuthMiddleware(tokens *token.Service, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		userID, err := tokens.Parse(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				abortUnauthorized(c, "User not found")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Message: "Something went wrong",
			})
			return
		}

		// Downstream handlers only ever see the sanitized record.
		user.PasswordHash = ""
		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser binds the authenticated user to the gin context.
func SetCurrentUser(c *gin.Context, user *entities.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the authenticated user bound by AuthMiddleware.
func CurrentUser(c *gin.Context) *entities.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := value.(*entities.User)
	return user
}

// extractToken prefers the Authorization header; browser clients fall back to
// the session cookie set at login.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(token.CookieName); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
		Success: false,
		Message: message,
	})
}
