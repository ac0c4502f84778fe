package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/middleware"
	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/internal/repository"
	"github.com/uptc-deportes/reservas-api/internal/service"
)

type stubReservationRepo struct {
	conflict bool
	created  *models.Reservation
}

func (s *stubReservationRepo) CreateIfFree(ctx context.Context, reservation *models.Reservation) error {
	if s.conflict {
		return repository.ErrSlotConflict
	}
	reservation.ID = "res-1"
	copied := *reservation
	s.created = &copied
	return nil
}

func (s *stubReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	return nil, sql.ErrNoRows
}

func (s *stubReservationRepo) GetDetail(ctx context.Context, id string) (*models.ReservationDetail, error) {
	return nil, sql.ErrNoRows
}

func (s *stubReservationRepo) List(ctx context.Context, filter models.ReservationFilter) ([]models.ReservationDetail, int, error) {
	return nil, 0, nil
}

func (s *stubReservationRepo) UpdateEstado(ctx context.Context, id string, estado models.ReservationStatus) (bool, error) {
	return false, nil
}

func asProfile(rol models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, &models.Profile{ID: "usr-1", NombreCompleto: "Ana Torres", Rol: rol})
		c.Next()
	}
}

func newReservationEngine(t *testing.T, repo *stubReservationRepo, rol models.UserRole) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	venueRepo := &stubVenueRepo{venues: map[string]*models.Venue{
		"esc-1": {ID: "esc-1", Nombre: "Cancha de fútbol", Estado: models.VenueActive},
	}}
	reservations := service.NewReservationService(repo, venueRepo, nil, nil, nil, zap.NewNop())
	h := NewReservationHandler(reservations, nil, nil)

	r := gin.New()
	r.POST("/api/reservas", asProfile(rol), h.Create)
	return r
}

func postReservation(r *gin.Engine, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservas", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const validReservationPayload = `{"escenario_id":"esc-1","fecha_reserva":"2026-09-01","hora_inicio":"10:00:00","hora_fin":"11:00:00"}`

func TestCreateReservationEndpointMemberApproved(t *testing.T) {
	repo := &stubReservationRepo{}
	r := newReservationEngine(t, repo, models.RoleMemberUPTC)

	w := postReservation(r, validReservationPayload)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Data models.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.ReservationApproved, body.Data.Estado)
	assert.Equal(t, "usr-1", body.Data.UsuarioID)
	require.NotNil(t, repo.created)
}

func TestCreateReservationEndpointExternalPending(t *testing.T) {
	r := newReservationEngine(t, &stubReservationRepo{}, models.RoleExternal)

	w := postReservation(r, validReservationPayload)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Data models.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.ReservationPending, body.Data.Estado)
}

func TestCreateReservationEndpointSlotTaken(t *testing.T) {
	r := newReservationEngine(t, &stubReservationRepo{conflict: true}, models.RoleMemberUPTC)

	w := postReservation(r, validReservationPayload)

	require.Equal(t, http.StatusConflict, w.Code)
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "SLOT_TAKEN", body.Error.Code)
}

// The "hora" binding only admits zero-padded HH:MM:SS values.
func TestCreateReservationEndpointRejectsUnpaddedHora(t *testing.T) {
	repo := &stubReservationRepo{}
	r := newReservationEngine(t, repo, models.RoleMemberUPTC)

	payload := `{"escenario_id":"esc-1","fecha_reserva":"2026-09-01","hora_inicio":"8:00:00","hora_fin":"10:00:00"}`
	w := postReservation(r, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, repo.created)
}

func TestCreateReservationEndpointBadPayload(t *testing.T) {
	r := newReservationEngine(t, &stubReservationRepo{}, models.RoleMemberUPTC)

	w := postReservation(r, `{"escenario_id":"esc-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// The export endpoint takes its output type from the formato query param.
func TestExportEndpointReadsFormatoQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubReservationRepo{}
	reservations := service.NewReservationService(repo, &stubVenueRepo{}, nil, nil, nil, zap.NewNop())
	exports := service.NewExportService(repo, true, zap.NewNop())
	h := NewReservationHandler(reservations, nil, exports)

	r := gin.New()
	r.GET("/api/reservas/export", asProfile(models.RoleAdmin), h.Export)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservas/export?formato=pdf", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")
}

// Estado supplied by the client is ignored; the server derives it.
func TestCreateReservationEndpointIgnoresClientEstado(t *testing.T) {
	r := newReservationEngine(t, &stubReservationRepo{}, models.RoleExternal)

	payload := `{"escenario_id":"esc-1","fecha_reserva":"2026-09-01","hora_inicio":"10:00:00","hora_fin":"11:00:00","estado":"APROBADA"}`
	w := postReservation(r, payload)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Data models.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.ReservationPending, body.Data.Estado)
}
