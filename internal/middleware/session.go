package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/service"
)

// ContextUserKey is the gin context key storing the resolved user.
const ContextUserKey = "currentUser"

// Session resolves the session cookie into a user and stores it in the
// request context. It never blocks: a missing, malformed, or expired token
// leaves the request anonymous, because several read endpoints deliberately
// serve an anonymous view instead of rejecting.
func Session(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		if user := authService.Resolve(token); user != nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the resolved user for the request, or nil when the
// request is anonymous.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
