package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

type mockScheduleDayRepo struct {
	schedules map[int]*models.WeeklySchedule
	lastDay   int
}

func (m *mockScheduleDayRepo) GetForDay(ctx context.Context, escenarioID string, diaSemana int) (*models.WeeklySchedule, error) {
	m.lastDay = diaSemana
	return m.schedules[diaSemana], nil
}

type mockBlackoutIntervalRepo struct {
	intervals []models.Interval
}

func (m *mockBlackoutIntervalRepo) IntervalsForDate(ctx context.Context, escenarioID string, fecha time.Time) ([]models.Interval, error) {
	return m.intervals, nil
}

type mockOccupiedRepo struct {
	intervals []models.Interval
}

func (m *mockOccupiedRepo) OccupiedIntervals(ctx context.Context, escenarioID string, fecha time.Time) ([]models.Interval, error) {
	return m.intervals, nil
}

func newAvailabilityService(schedules *mockScheduleDayRepo, blackouts *mockBlackoutIntervalRepo, reservations *mockOccupiedRepo) *AvailabilityService {
	return NewAvailabilityService(schedules, blackouts, reservations, nil, nil, zap.NewNop())
}

func TestBlocksForDateSundayMapsToSeven(t *testing.T) {
	schedules := &mockScheduleDayRepo{schedules: map[int]*models.WeeklySchedule{
		7: {HoraApertura: "08:00:00", HoraCierre: "10:00:00"},
	}}
	svc := newAvailabilityService(schedules, &mockBlackoutIntervalRepo{}, &mockOccupiedRepo{})

	// 2026-08-30 is a Sunday.
	fecha := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	blocks, cached, err := svc.BlocksForDate(context.Background(), "esc-1", fecha)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 7, schedules.lastDay)
	require.Len(t, blocks, 2)
}

func TestBlocksForDateClosedDayReturnsEmpty(t *testing.T) {
	svc := newAvailabilityService(&mockScheduleDayRepo{}, &mockBlackoutIntervalRepo{}, &mockOccupiedRepo{})

	fecha := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	blocks, _, err := svc.BlocksForDate(context.Background(), "esc-1", fecha)
	require.NoError(t, err)
	require.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestBlocksForDateUnionsBlackoutsAndReservations(t *testing.T) {
	schedules := &mockScheduleDayRepo{schedules: map[int]*models.WeeklySchedule{
		1: {HoraApertura: "08:00:00", HoraCierre: "12:00:00"},
	}}
	blackouts := &mockBlackoutIntervalRepo{intervals: []models.Interval{{HoraInicio: "08:00:00", HoraFin: "09:00:00"}}}
	reservations := &mockOccupiedRepo{intervals: []models.Interval{{HoraInicio: "10:00:00", HoraFin: "11:00:00"}}}
	svc := newAvailabilityService(schedules, blackouts, reservations)

	// 2026-08-31 is a Monday.
	fecha := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	blocks, _, err := svc.BlocksForDate(context.Background(), "esc-1", fecha)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "09:00:00", blocks[0].HoraInicio)
	assert.Equal(t, "11:00:00", blocks[1].HoraInicio)
}
