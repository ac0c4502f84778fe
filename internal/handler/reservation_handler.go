package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uptc-deportes/reservas-api/internal/middleware"
	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/internal/service"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
	"github.com/uptc-deportes/reservas-api/pkg/response"
)

// ReservationHandler exposes reservation lifecycle endpoints.
type ReservationHandler struct {
	reservations *service.ReservationService
	proofs       *service.ProofService
	exports      *service.ExportService
}

// NewReservationHandler constructs ReservationHandler.
func NewReservationHandler(reservations *service.ReservationService, proofs *service.ProofService, exports *service.ExportService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, proofs: proofs, exports: exports}
}

type createReservationRequest struct {
	EscenarioID  string `json:"escenario_id" binding:"required"`
	FechaReserva string `json:"fecha_reserva" binding:"required"`
	HoraInicio   string `json:"hora_inicio" binding:"required,hora"`
	HoraFin      string `json:"hora_fin" binding:"required,hora"`
}

// Create godoc
// @Summary Create reservation
// @Tags Reservas
// @Accept json
// @Produce json
// @Param payload body createReservationRequest true "Reservation payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /reservas [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	fecha, err := time.Parse("2006-01-02", req.FechaReserva)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "fecha_reserva debe tener formato YYYY-MM-DD"))
		return
	}
	profile, _ := middleware.CurrentProfile(c)
	reservation, err := h.reservations.Create(c.Request.Context(), service.CreateReservationInput{
		EscenarioID:  req.EscenarioID,
		FechaReserva: fecha,
		HoraInicio:   req.HoraInicio,
		HoraFin:      req.HoraFin,
	}, profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reservation)
}

// List godoc
// @Summary List reservations
// @Tags Reservas
// @Produce json
// @Param escenarioId query string false "Filter by venue"
// @Param estado query string false "Filter by estado"
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date (YYYY-MM-DD)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /reservas [get]
func (h *ReservationHandler) List(c *gin.Context) {
	filter, err := reservationFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	profile, _ := middleware.CurrentProfile(c)
	details, total, err := h.reservations.List(c.Request.Context(), filter, profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	response.JSON(c, http.StatusOK, details, pagination)
}

// Get godoc
// @Summary Get reservation detail
// @Tags Reservas
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Envelope
// @Router /reservas/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)
	detail, err := h.reservations.Get(c.Request.Context(), c.Param("id"), profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

type changeStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

// ChangeStatus godoc
// @Summary Approve or reject a pending reservation
// @Tags Reservas
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param payload body changeStatusRequest true "New estado (APROBADA or RECHAZADA)"
// @Success 200 {object} response.Envelope
// @Router /reservas/{id}/estado [patch]
func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	profile, _ := middleware.CurrentProfile(c)
	reservation, err := h.reservations.ChangeStatus(c.Request.Context(), c.Param("id"), models.ReservationStatus(req.Estado), profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reservation, nil)
}

// ValidateEntry godoc
// @Summary Validate a scanned reservation QR at the gate
// @Tags Reservas
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Envelope
// @Router /reservas/{id}/validar-entrada [post]
func (h *ReservationHandler) ValidateEntry(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)
	result, err := h.reservations.ValidateEntry(c.Request.Context(), c.Param("id"), profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Export reservations as CSV or PDF
// @Tags Reservas
// @Produce text/csv
// @Produce application/pdf
// @Param formato query string true "Export format (csv or pdf)"
// @Param escenarioId query string false "Filter by venue"
// @Param estado query string false "Filter by estado"
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /reservas/export [get]
func (h *ReservationHandler) Export(c *gin.Context) {
	filter, err := reservationFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	formato := c.DefaultQuery("formato", "csv")
	payload, contentType, err := h.exports.Reservations(c.Request.Context(), filter, formato)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("reservas-%s.%s", time.Now().Format("20060102"), formato)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}

// UploadProof godoc
// @Summary Attach a payment proof to a reservation
// @Tags Reservas
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Reservation ID"
// @Param comprobante formData file true "Proof file (pdf, png, jpg)"
// @Success 201 {object} response.Envelope
// @Router /reservas/{id}/comprobante [post]
func (h *ReservationHandler) UploadProof(c *gin.Context) {
	fileHeader, err := c.FormFile("comprobante")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "comprobante es obligatorio"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "no se pudo leer el archivo"))
		return
	}
	defer file.Close() //nolint:errcheck

	profile, _ := middleware.CurrentProfile(c)
	relPath, err := h.proofs.Attach(c.Request.Context(), c.Param("id"), fileHeader.Filename, fileHeader.Size, file, profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"comprobante_url": relPath})
}

// ProofLink godoc
// @Summary Issue a signed download link for a reservation's proof
// @Tags Reservas
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Envelope
// @Router /reservas/{id}/comprobante [get]
func (h *ReservationHandler) ProofLink(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)
	token, expiresAt, err := h.proofs.SignedDownload(c.Request.Context(), c.Param("id"), profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt.UTC(),
	}, nil)
}

// DownloadProof godoc
// @Summary Download a proof through a signed token
// @Tags Reservas
// @Produce application/octet-stream
// @Param token query string true "Signed download token"
// @Success 200 {file} binary
// @Router /reservas/comprobantes/descarga [get]
func (h *ReservationHandler) DownloadProof(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token es obligatorio"))
		return
	}
	file, filename, err := h.proofs.Resolve(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, file)
}

func reservationFilterFromQuery(c *gin.Context) (models.ReservationFilter, error) {
	var filter models.ReservationFilter
	filter.EscenarioID = c.Query("escenarioId")
	if estado := c.Query("estado"); estado != "" {
		status := models.ReservationStatus(estado)
		if !status.Valid() {
			return filter, appErrors.Clone(appErrors.ErrValidation, "estado inválido")
		}
		filter.Estado = &status
	}
	if desde := c.Query("desde"); desde != "" {
		parsed, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "desde debe tener formato YYYY-MM-DD")
		}
		filter.Desde = &parsed
	}
	if hasta := c.Query("hasta"); hasta != "" {
		parsed, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "hasta debe tener formato YYYY-MM-DD")
		}
		filter.Hasta = &parsed
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	return filter, nil
}
