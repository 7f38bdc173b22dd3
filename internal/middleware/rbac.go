package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/campusgpt/portal-api/internal/models"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
	"github.com/campusgpt/portal-api/pkg/response"
)

// RequireRoles guards a route behind a role check. It distinguishes the two
// deny reasons: an anonymous request is unauthenticated (401), a resolved
// identity with the wrong role is forbidden (403). On deny the guarded
// handler never runs.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if _, ok := allowed[user.Role]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "authorization required: insufficient role"))
			c.Abort()
			return
		}

		c.Next()
	}
}
