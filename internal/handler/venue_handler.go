package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uptc-deportes/reservas-api/internal/middleware"
	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/internal/service"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
	"github.com/uptc-deportes/reservas-api/pkg/response"
)

// VenueHandler exposes venue, schedule and availability endpoints.
type VenueHandler struct {
	venues       *service.VenueService
	schedules    *service.ScheduleService
	availability *service.AvailabilityService
}

// NewVenueHandler constructs VenueHandler.
func NewVenueHandler(venues *service.VenueService, schedules *service.ScheduleService, availability *service.AvailabilityService) *VenueHandler {
	return &VenueHandler{venues: venues, schedules: schedules, availability: availability}
}

type venueRequest struct {
	Nombre      string  `json:"nombre" binding:"required"`
	Descripcion string  `json:"descripcion"`
	Aforo       int     `json:"aforo" binding:"gte=0"`
	TarifaHora  int     `json:"tarifa_hora" binding:"gte=0"`
	ImagenURL   *string `json:"imagen_url"`
	Estado      string  `json:"estado"`
}

// List godoc
// @Summary List sports venues
// @Tags Escenarios
// @Produce json
// @Param estado query string false "Filter by estado (ACTIVO, MANTENIMIENTO, INACTIVO)"
// @Param search query string false "Search by name or description"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /escenarios [get]
func (h *VenueHandler) List(c *gin.Context) {
	var filter models.VenueFilter
	filter.Search = strings.TrimSpace(c.Query("search"))
	if estado := c.Query("estado"); estado != "" {
		status := models.VenueStatus(estado)
		if !status.Valid() {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "estado inválido"))
			return
		}
		filter.Estado = &status
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	venues, total, err := h.venues.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	response.JSON(c, http.StatusOK, venues, pagination)
}

// Get godoc
// @Summary Get venue detail
// @Tags Escenarios
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Envelope
// @Router /escenarios/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	venue, err := h.venues.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, venue, nil)
}

// Create godoc
// @Summary Create venue
// @Tags Escenarios
// @Accept json
// @Produce json
// @Param payload body venueRequest true "Venue payload"
// @Success 201 {object} response.Envelope
// @Router /escenarios [post]
func (h *VenueHandler) Create(c *gin.Context) {
	var req venueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	venue := &models.Venue{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Aforo:       req.Aforo,
		TarifaHora:  req.TarifaHora,
		ImagenURL:   req.ImagenURL,
		Estado:      models.VenueStatus(req.Estado),
	}
	if err := h.venues.Create(c.Request.Context(), venue, currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, venue)
}

// Update godoc
// @Summary Update venue
// @Tags Escenarios
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param payload body venueRequest true "Venue payload"
// @Success 200 {object} response.Envelope
// @Router /escenarios/{id} [put]
func (h *VenueHandler) Update(c *gin.Context) {
	var req venueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	venue := &models.Venue{
		ID:          c.Param("id"),
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Aforo:       req.Aforo,
		TarifaHora:  req.TarifaHora,
		ImagenURL:   req.ImagenURL,
		Estado:      models.VenueStatus(req.Estado),
	}
	if err := h.venues.Update(c.Request.Context(), venue, currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, venue, nil)
}

type venueStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

// ChangeStatus godoc
// @Summary Change venue estado
// @Tags Escenarios
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param payload body venueStatusRequest true "New estado"
// @Success 200 {object} response.Envelope
// @Router /escenarios/{id}/estado [patch]
func (h *VenueHandler) ChangeStatus(c *gin.Context) {
	var req venueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	venue, err := h.venues.ChangeStatus(c.Request.Context(), c.Param("id"), models.VenueStatus(req.Estado), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, venue, nil)
}

// Delete godoc
// @Summary Delete venue
// @Tags Escenarios
// @Param id path string true "Venue ID"
// @Success 204
// @Router /escenarios/{id} [delete]
func (h *VenueHandler) Delete(c *gin.Context) {
	if err := h.venues.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Availability godoc
// @Summary Free one-hour blocks for a venue on a date
// @Tags Escenarios
// @Produce json
// @Param id path string true "Venue ID"
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /escenarios/{id}/disponibilidad [get]
func (h *VenueHandler) Availability(c *gin.Context) {
	fecha, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "fecha debe tener formato YYYY-MM-DD"))
		return
	}
	if _, err := h.venues.Get(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	blocks, fromCache, err := h.availability.BlocksForDate(c.Request.Context(), c.Param("id"), fecha)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"libres": blocks}, nil, map[string]interface{}{"cached": fromCache})
}

type scheduleRequest struct {
	DiaSemana    int    `json:"dia_semana" binding:"required,min=1,max=7"`
	HoraApertura string `json:"hora_apertura" binding:"required,hora"`
	HoraCierre   string `json:"hora_cierre" binding:"required,hora"`
}

// ListSchedules godoc
// @Summary List weekly opening windows
// @Tags Escenarios
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Envelope
// @Router /escenarios/{id}/horarios [get]
func (h *VenueHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.schedules.ListSchedules(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules, nil)
}

// CreateSchedule godoc
// @Summary Add a weekly opening window
// @Tags Escenarios
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param payload body scheduleRequest true "Schedule payload"
// @Success 201 {object} response.Envelope
// @Router /escenarios/{id}/horarios [post]
func (h *VenueHandler) CreateSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	schedule := &models.WeeklySchedule{
		EscenarioID:  c.Param("id"),
		DiaSemana:    req.DiaSemana,
		HoraApertura: req.HoraApertura,
		HoraCierre:   req.HoraCierre,
	}
	if err := h.schedules.CreateSchedule(c.Request.Context(), schedule); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, schedule)
}

// DeleteSchedule godoc
// @Summary Remove a weekly opening window
// @Tags Escenarios
// @Param id path string true "Venue ID"
// @Param horarioId path string true "Schedule ID"
// @Success 204
// @Router /escenarios/{id}/horarios/{horarioId} [delete]
func (h *VenueHandler) DeleteSchedule(c *gin.Context) {
	if err := h.schedules.DeleteSchedule(c.Request.Context(), c.Param("id"), c.Param("horarioId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

type blackoutRequest struct {
	Fecha      string `json:"fecha" binding:"required"`
	HoraInicio string `json:"hora_inicio" binding:"required,hora"`
	HoraFin    string `json:"hora_fin" binding:"required,hora"`
	Motivo     string `json:"motivo"`
}

// ListBlackouts godoc
// @Summary List exceptional closures
// @Tags Escenarios
// @Produce json
// @Param id path string true "Venue ID"
// @Param fecha query string false "Restrict to a date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /escenarios/{id}/bloqueos [get]
func (h *VenueHandler) ListBlackouts(c *gin.Context) {
	var fecha *time.Time
	if raw := c.Query("fecha"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "fecha debe tener formato YYYY-MM-DD"))
			return
		}
		fecha = &parsed
	}
	blackouts, err := h.schedules.ListBlackouts(c.Request.Context(), c.Param("id"), fecha)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, blackouts, nil)
}

// CreateBlackout godoc
// @Summary Register an exceptional closure
// @Tags Escenarios
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param payload body blackoutRequest true "Blackout payload"
// @Success 201 {object} response.Envelope
// @Router /escenarios/{id}/bloqueos [post]
func (h *VenueHandler) CreateBlackout(c *gin.Context) {
	var req blackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "fecha debe tener formato YYYY-MM-DD"))
		return
	}
	blackout := &models.Blackout{
		EscenarioID: c.Param("id"),
		Fecha:       fecha,
		HoraInicio:  req.HoraInicio,
		HoraFin:     req.HoraFin,
		Motivo:      req.Motivo,
	}
	if err := h.schedules.CreateBlackout(c.Request.Context(), blackout); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, blackout)
}

// DeleteBlackout godoc
// @Summary Remove an exceptional closure
// @Tags Escenarios
// @Param id path string true "Venue ID"
// @Param bloqueoId path string true "Blackout ID"
// @Success 204
// @Router /escenarios/{id}/bloqueos/{bloqueoId} [delete]
func (h *VenueHandler) DeleteBlackout(c *gin.Context) {
	if err := h.schedules.DeleteBlackout(c.Request.Context(), c.Param("id"), c.Param("bloqueoId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func currentUserID(c *gin.Context) string {
	if profile, ok := middleware.CurrentProfile(c); ok {
		return profile.ID
	}
	return ""
}
