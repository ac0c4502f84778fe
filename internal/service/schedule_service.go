package service

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
)

// ScheduleRepository persists weekly opening windows.
type ScheduleRepository interface {
	ListByVenue(ctx context.Context, escenarioID string) ([]models.WeeklySchedule, error)
	Create(ctx context.Context, schedule *models.WeeklySchedule) error
	Delete(ctx context.Context, id string) error
}

// BlackoutRepository persists exceptional closures.
type BlackoutRepository interface {
	ListByVenue(ctx context.Context, escenarioID string, fecha *time.Time) ([]models.Blackout, error)
	Create(ctx context.Context, blackout *models.Blackout) error
	Delete(ctx context.Context, id string) error
}

// ScheduleService manages weekly schedules and blackouts for venues.
type ScheduleService struct {
	schedules    ScheduleRepository
	blackouts    BlackoutRepository
	venues       VenueRepository
	availability *AvailabilityService
	logger       *zap.Logger
}

// NewScheduleService constructs a schedule service.
func NewScheduleService(schedules ScheduleRepository, blackouts BlackoutRepository, venues VenueRepository, availability *AvailabilityService, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{schedules: schedules, blackouts: blackouts, venues: venues, availability: availability, logger: logger}
}

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

// validTimeOfDay accepts only zero-padded HH:MM:SS values. The padding is
// load-bearing: stored times are ordered lexicographically, so "8:00:00"
// would sort after "10:00:00".
func validTimeOfDay(value string) bool {
	return timeOfDayPattern.MatchString(value)
}

// ListSchedules returns the weekly windows for a venue.
func (s *ScheduleService) ListSchedules(ctx context.Context, escenarioID string) ([]models.WeeklySchedule, error) {
	if _, err := s.venues.GetByID(ctx, escenarioID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "escenario no encontrado")
	}
	return s.schedules.ListByVenue(ctx, escenarioID)
}

// CreateSchedule adds a weekly window. Days run Monday 1 through Sunday 7.
func (s *ScheduleService) CreateSchedule(ctx context.Context, schedule *models.WeeklySchedule) error {
	if schedule.DiaSemana < 1 || schedule.DiaSemana > 7 {
		return appErrors.Clone(appErrors.ErrValidation, "dia_semana debe estar entre 1 y 7")
	}
	if !validTimeOfDay(schedule.HoraApertura) || !validTimeOfDay(schedule.HoraCierre) {
		return appErrors.Clone(appErrors.ErrValidation, "horas deben tener formato HH:MM:SS")
	}
	if schedule.HoraApertura >= schedule.HoraCierre {
		return appErrors.Clone(appErrors.ErrValidation, "hora_apertura debe ser anterior a hora_cierre")
	}
	if _, err := s.venues.GetByID(ctx, schedule.EscenarioID); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "escenario no encontrado")
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return err
	}
	if s.availability != nil {
		s.availability.Invalidate(ctx, schedule.EscenarioID)
	}
	return nil
}

// DeleteSchedule removes a weekly window.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, escenarioID, scheduleID string) error {
	if err := s.schedules.Delete(ctx, scheduleID); err != nil {
		return err
	}
	if s.availability != nil {
		s.availability.Invalidate(ctx, escenarioID)
	}
	return nil
}

// ListBlackouts returns closures for a venue, optionally for a single date.
func (s *ScheduleService) ListBlackouts(ctx context.Context, escenarioID string, fecha *time.Time) ([]models.Blackout, error) {
	if _, err := s.venues.GetByID(ctx, escenarioID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "escenario no encontrado")
	}
	return s.blackouts.ListByVenue(ctx, escenarioID, fecha)
}

// CreateBlackout registers an exceptional closure.
func (s *ScheduleService) CreateBlackout(ctx context.Context, blackout *models.Blackout) error {
	if !validTimeOfDay(blackout.HoraInicio) || !validTimeOfDay(blackout.HoraFin) {
		return appErrors.Clone(appErrors.ErrValidation, "horas deben tener formato HH:MM:SS")
	}
	if blackout.HoraInicio >= blackout.HoraFin {
		return appErrors.Clone(appErrors.ErrValidation, "hora_inicio debe ser anterior a hora_fin")
	}
	if _, err := s.venues.GetByID(ctx, blackout.EscenarioID); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "escenario no encontrado")
	}
	if err := s.blackouts.Create(ctx, blackout); err != nil {
		return err
	}
	if s.availability != nil {
		s.availability.Invalidate(ctx, blackout.EscenarioID)
	}
	return nil
}

// DeleteBlackout removes a closure.
func (s *ScheduleService) DeleteBlackout(ctx context.Context, escenarioID, blackoutID string) error {
	if err := s.blackouts.Delete(ctx, blackoutID); err != nil {
		return err
	}
	if s.availability != nil {
		s.availability.Invalidate(ctx, escenarioID)
	}
	return nil
}
