package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

func performWithProfile(t *testing.T, profile *models.Profile, allowed ...models.UserRole) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if profile != nil {
		r.Use(func(c *gin.Context) {
			c.Set(ContextUserKey, profile)
			c.Next()
		})
	}
	r.GET("/protected", RequireRoles(allowed...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	profile := &models.Profile{ID: "usr-1", Rol: models.RoleAdmin}
	assert.Equal(t, http.StatusOK, performWithProfile(t, profile, models.RoleAdmin))
}

func TestRequireRolesRejectsOtherRole(t *testing.T) {
	profile := &models.Profile{ID: "usr-1", Rol: models.RoleExternal}
	assert.Equal(t, http.StatusForbidden, performWithProfile(t, profile, models.RoleAdmin))
}

func TestRequireRolesRejectsAnonymous(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, performWithProfile(t, nil, models.RoleAdmin))
}

func TestRequireRolesMultipleRoles(t *testing.T) {
	profile := &models.Profile{ID: "usr-1", Rol: models.RoleMemberUPTC}
	assert.Equal(t, http.StatusOK, performWithProfile(t, profile, models.RoleAdmin, models.RoleMemberUPTC))
}
