package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

// AvailabilityScheduleRepository fetches the weekly opening window.
type AvailabilityScheduleRepository interface {
	GetForDay(ctx context.Context, escenarioID string, diaSemana int) (*models.WeeklySchedule, error)
}

// AvailabilityBlackoutRepository fetches exceptional closures.
type AvailabilityBlackoutRepository interface {
	IntervalsForDate(ctx context.Context, escenarioID string, fecha time.Time) ([]models.Interval, error)
}

// AvailabilityReservationRepository fetches occupying reservations.
type AvailabilityReservationRepository interface {
	OccupiedIntervals(ctx context.Context, escenarioID string, fecha time.Time) ([]models.Interval, error)
}

// AvailabilityService computes the free one-hour blocks of a venue for a
// given date, with a short-lived Redis cache in front.
type AvailabilityService struct {
	schedules    AvailabilityScheduleRepository
	blackouts    AvailabilityBlackoutRepository
	reservations AvailabilityReservationRepository
	cache        *CacheService
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewAvailabilityService constructs an availability service.
func NewAvailabilityService(
	schedules AvailabilityScheduleRepository,
	blackouts AvailabilityBlackoutRepository,
	reservations AvailabilityReservationRepository,
	cache *CacheService,
	metrics *MetricsService,
	logger *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		schedules:    schedules,
		blackouts:    blackouts,
		reservations: reservations,
		cache:        cache,
		metrics:      metrics,
		logger:       logger,
	}
}

func availabilityCacheKey(escenarioID string, fecha time.Time) string {
	return fmt.Sprintf("disponibilidad:%s:%s", escenarioID, fecha.Format("2006-01-02"))
}

// BlocksForDate returns the free blocks for (venue, date). The boolean
// indicates whether the result came from cache.
func (s *AvailabilityService) BlocksForDate(ctx context.Context, escenarioID string, fecha time.Time) ([]models.TimeBlock, bool, error) {
	cacheKey := availabilityCacheKey(escenarioID, fecha)
	var cached []models.TimeBlock
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, true, nil
		}
	}

	// Sunday maps to 7 so the week runs Monday 1 through Sunday 7.
	day := int(fecha.Weekday())
	if day == 0 {
		day = 7
	}

	start := time.Now()
	schedule, err := s.schedules.GetForDay(ctx, escenarioID, day)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("availability_schedule", time.Since(start))
	}
	if schedule == nil {
		return []models.TimeBlock{}, false, nil
	}

	occupied := []models.Interval{}
	blackouts, err := s.blackouts.IntervalsForDate(ctx, escenarioID, fecha)
	if err != nil {
		return nil, false, err
	}
	occupied = append(occupied, blackouts...)

	reserved, err := s.reservations.OccupiedIntervals(ctx, escenarioID, fecha)
	if err != nil {
		return nil, false, err
	}
	occupied = append(occupied, reserved...)

	blocks := FreeBlocks(schedule, occupied)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, blocks, 0); err != nil && s.logger != nil {
			s.logger.Warn("cache availability", zap.Error(err))
		}
	}
	return blocks, false, nil
}

// Invalidate drops every cached availability entry for the venue. Called
// after any write that can change the venue's free blocks.
func (s *AvailabilityService) Invalidate(ctx context.Context, escenarioID string) {
	if s.cache == nil {
		return
	}
	pattern := fmt.Sprintf("disponibilidad:%s:*", escenarioID)
	if err := s.cache.Invalidate(ctx, pattern); err != nil && s.logger != nil {
		s.logger.Warn("invalidate availability cache", zap.String("escenario_id", escenarioID), zap.Error(err))
	}
}
