package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uptc-deportes/reservas-api/internal/middleware"
	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/internal/service"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
	"github.com/uptc-deportes/reservas-api/pkg/response"
)

// ProfileHandler exposes user profile endpoints.
type ProfileHandler struct {
	profiles *service.ProfileService
	metrics  *service.MetricsService
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService, metrics *service.MetricsService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, metrics: metrics}
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags Perfiles
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /perfiles/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// List godoc
// @Summary List user profiles
// @Tags Perfiles
// @Produce json
// @Param rol query string false "Filter by role"
// @Param search query string false "Search by name"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /perfiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	var filter models.ProfileFilter
	filter.Search = strings.TrimSpace(c.Query("search"))
	if rol := c.Query("rol"); rol != "" {
		role := models.UserRole(rol)
		if !role.Valid() {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "rol inválido"))
			return
		}
		filter.Rol = &role
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	profiles, total, err := h.profiles.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	response.JSON(c, http.StatusOK, profiles, pagination)
}

// SystemMetrics godoc
// @Summary Instrumentation snapshot
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/metrics [get]
func (h *ProfileHandler) SystemMetrics(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.metrics.Snapshot(), nil)
}
