package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/internal/service"
)

type stubVenueRepo struct {
	venues map[string]*models.Venue
}

func (s *stubVenueRepo) List(ctx context.Context, filter models.VenueFilter) ([]models.Venue, int, error) {
	var result []models.Venue
	for _, v := range s.venues {
		result = append(result, *v)
	}
	return result, len(result), nil
}

func (s *stubVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return v, nil
}

func (s *stubVenueRepo) Create(ctx context.Context, venue *models.Venue) error { return nil }
func (s *stubVenueRepo) Update(ctx context.Context, venue *models.Venue) error { return nil }
func (s *stubVenueRepo) Delete(ctx context.Context, id string) error           { return nil }

type stubScheduleRepo struct {
	schedule *models.WeeklySchedule
}

func (s *stubScheduleRepo) GetForDay(ctx context.Context, escenarioID string, diaSemana int) (*models.WeeklySchedule, error) {
	return s.schedule, nil
}

type stubBlackoutRepo struct{}

func (s *stubBlackoutRepo) IntervalsForDate(ctx context.Context, escenarioID string, fecha time.Time) ([]models.Interval, error) {
	return nil, nil
}

type stubOccupiedRepo struct {
	intervals []models.Interval
}

func (s *stubOccupiedRepo) OccupiedIntervals(ctx context.Context, escenarioID string, fecha time.Time) ([]models.Interval, error) {
	return s.intervals, nil
}

func newTestEngine(t *testing.T, occupied []models.Interval) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	venueRepo := &stubVenueRepo{venues: map[string]*models.Venue{
		"esc-1": {ID: "esc-1", Nombre: "Cancha de fútbol", Estado: models.VenueActive},
	}}
	availability := service.NewAvailabilityService(
		&stubScheduleRepo{schedule: &models.WeeklySchedule{HoraApertura: "08:00:00", HoraCierre: "10:00:00"}},
		&stubBlackoutRepo{},
		&stubOccupiedRepo{intervals: occupied},
		nil, nil, zap.NewNop(),
	)
	venues := service.NewVenueService(venueRepo, availability, nil, zap.NewNop())
	h := NewVenueHandler(venues, nil, availability)

	r := gin.New()
	r.GET("/api/escenarios/:id/disponibilidad", h.Availability)
	r.GET("/api/escenarios/:id", h.Get)
	return r
}

func TestAvailabilityEndpointReturnsFreeBlocks(t *testing.T) {
	r := newTestEngine(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/escenarios/esc-1/disponibilidad?fecha=2026-08-31", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data struct {
			Libres []models.TimeBlock `json:"libres"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Libres, 2)
	assert.Equal(t, "08:00:00", body.Data.Libres[0].HoraInicio)
	assert.Equal(t, "8:00 - 9:00", body.Data.Libres[0].Etiqueta)
}

func TestAvailabilityEndpointExcludesOccupiedBlock(t *testing.T) {
	r := newTestEngine(t, []models.Interval{{HoraInicio: "08:00:00", HoraFin: "09:00:00"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/escenarios/esc-1/disponibilidad?fecha=2026-08-31", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data struct {
			Libres []models.TimeBlock `json:"libres"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Libres, 1)
	assert.Equal(t, "09:00:00", body.Data.Libres[0].HoraInicio)
}

func TestAvailabilityEndpointRejectsBadDate(t *testing.T) {
	r := newTestEngine(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/escenarios/esc-1/disponibilidad?fecha=31-08-2026", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityEndpointUnknownVenue(t *testing.T) {
	r := newTestEngine(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/escenarios/missing/disponibilidad?fecha=2026-08-31", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVenueEndpoint(t *testing.T) {
	r := newTestEngine(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/escenarios/esc-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data models.Venue `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Cancha de fútbol", body.Data.Nombre)
	assert.Equal(t, models.VenueActive, body.Data.Estado)
}
