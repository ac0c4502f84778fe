package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uptc-deportes/reservas-api/internal/identity"
	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
	"github.com/uptc-deportes/reservas-api/pkg/response"
)

// ContextUserKey is the gin context key storing the authenticated profile.
const ContextUserKey = "currentUser"

// ProfileLoader resolves the profile backing a token subject.
type ProfileLoader interface {
	Get(ctx context.Context, id string) (*models.Profile, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// Auth protects routes by requiring a valid identity-provider token whose
// subject maps to a known profile.
func Auth(verifier *identity.Verifier, profiles ProfileLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "token inválido"))
			c.Abort()
			return
		}

		profile, err := profiles.Get(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "usuario no registrado"))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, profile)
		c.Next()
	}
}

// CurrentProfile extracts the authenticated profile from the context.
func CurrentProfile(c *gin.Context) (*models.Profile, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	profile, ok := value.(*models.Profile)
	return profile, ok
}
