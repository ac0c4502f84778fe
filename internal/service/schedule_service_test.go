package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
)

type mockWeeklyRepo struct {
	created []models.WeeklySchedule
}

func (m *mockWeeklyRepo) ListByVenue(ctx context.Context, escenarioID string) ([]models.WeeklySchedule, error) {
	return m.created, nil
}

func (m *mockWeeklyRepo) Create(ctx context.Context, schedule *models.WeeklySchedule) error {
	m.created = append(m.created, *schedule)
	return nil
}

func (m *mockWeeklyRepo) Delete(ctx context.Context, id string) error { return nil }

type mockBlackoutStore struct {
	created []models.Blackout
}

func (m *mockBlackoutStore) ListByVenue(ctx context.Context, escenarioID string, fecha *time.Time) ([]models.Blackout, error) {
	return m.created, nil
}

func (m *mockBlackoutStore) Create(ctx context.Context, blackout *models.Blackout) error {
	m.created = append(m.created, *blackout)
	return nil
}

func (m *mockBlackoutStore) Delete(ctx context.Context, id string) error { return nil }

func newScheduleService(schedules *mockWeeklyRepo, blackouts *mockBlackoutStore) *ScheduleService {
	return NewScheduleService(schedules, blackouts, activeVenueRepo(), nil, zap.NewNop())
}

func TestValidTimeOfDayRequiresZeroPadding(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"08:00:00", true},
		{"00:00:00", true},
		{"23:59:59", true},
		{"8:00:00", false},
		{"08:00", false},
		{"24:00:00", false},
		{"12:60:00", false},
		{"12:00:60", false},
		{"", false},
		{"mediodía", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validTimeOfDay(tc.value), tc.value)
	}
}

// An unpadded opening hour sorts after the padded closing hour, which would
// silently produce an empty or full day. The gate rejects it up front.
func TestCreateScheduleRejectsUnpaddedHours(t *testing.T) {
	repo := &mockWeeklyRepo{}
	svc := newScheduleService(repo, &mockBlackoutStore{})

	err := svc.CreateSchedule(context.Background(), &models.WeeklySchedule{
		EscenarioID:  "esc-1",
		DiaSemana:    1,
		HoraApertura: "8:00:00",
		HoraCierre:   "18:00:00",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "horas deben tener formato HH:MM:SS", appErr.Message)
	assert.Empty(t, repo.created)
}

func TestCreateScheduleAcceptsPaddedWindow(t *testing.T) {
	repo := &mockWeeklyRepo{}
	svc := newScheduleService(repo, &mockBlackoutStore{})

	err := svc.CreateSchedule(context.Background(), &models.WeeklySchedule{
		EscenarioID:  "esc-1",
		DiaSemana:    1,
		HoraApertura: "08:00:00",
		HoraCierre:   "18:00:00",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
}

func TestCreateBlackoutRejectsUnpaddedHours(t *testing.T) {
	blackouts := &mockBlackoutStore{}
	svc := newScheduleService(&mockWeeklyRepo{}, blackouts)

	err := svc.CreateBlackout(context.Background(), &models.Blackout{
		EscenarioID: "esc-1",
		Fecha:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		HoraInicio:  "9:00:00",
		HoraFin:     "12:00:00",
		Motivo:      "mantenimiento",
	})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
	assert.Empty(t, blackouts.created)
}
