package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
	"github.com/uptc-deportes/reservas-api/pkg/response"
)

// RequireRoles enforces that the authenticated profile holds one of the
// allowed roles. Every role-gated route goes through here; there is no other
// authorization path.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		profile, ok := CurrentProfile(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, permitted := allowed[profile.Rol]; !permitted {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
