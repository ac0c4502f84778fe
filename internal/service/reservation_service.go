package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/internal/repository"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
)

// ReservationRepository describes the persistence layer required by
// ReservationService.
type ReservationRepository interface {
	CreateIfFree(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	GetDetail(ctx context.Context, id string) (*models.ReservationDetail, error)
	List(ctx context.Context, filter models.ReservationFilter) ([]models.ReservationDetail, int, error)
	UpdateEstado(ctx context.Context, id string, estado models.ReservationStatus) (bool, error)
}

// CreateReservationInput carries the caller-provided fields for a new
// reservation. Estado is derived from the requester's role, never accepted
// from the client.
type CreateReservationInput struct {
	EscenarioID  string
	FechaReserva time.Time
	HoraInicio   string
	HoraFin      string
}

// ReservationService manages the reservation lifecycle.
type ReservationService struct {
	reservations ReservationRepository
	venues       VenueRepository
	availability *AvailabilityService
	audit        *AuditService
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewReservationService constructs a reservation service.
func NewReservationService(
	reservations ReservationRepository,
	venues VenueRepository,
	availability *AvailabilityService,
	audit *AuditService,
	metrics *MetricsService,
	logger *zap.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		venues:       venues,
		availability: availability,
		audit:        audit,
		metrics:      metrics,
		logger:       logger,
	}
}

// initialStatus derives the starting estado from the requester's role.
// Institutional users are trusted; external users wait for admin approval.
func initialStatus(rol models.UserRole) models.ReservationStatus {
	switch rol {
	case models.RoleAdmin, models.RoleMemberUPTC:
		return models.ReservationApproved
	default:
		return models.ReservationPending
	}
}

// Create books a time window for the requester. The insert only succeeds
// when no occupying reservation overlaps the window.
func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput, requester *models.Profile) (*models.Reservation, error) {
	if requester == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if !validTimeOfDay(input.HoraInicio) || !validTimeOfDay(input.HoraFin) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "horas deben tener formato HH:MM:SS")
	}
	if input.HoraInicio >= input.HoraFin {
		return nil, appErrors.Clone(appErrors.ErrValidation, "hora_inicio debe ser anterior a hora_fin")
	}
	if input.FechaReserva.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "fecha_reserva es obligatoria")
	}

	venue, err := s.venues.GetByID(ctx, input.EscenarioID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "escenario no encontrado")
		}
		return nil, err
	}
	if venue.Estado != models.VenueActive {
		return nil, appErrors.Clone(appErrors.ErrConflict, "el escenario no está disponible para reservas")
	}

	reservation := &models.Reservation{
		EscenarioID:  input.EscenarioID,
		UsuarioID:    requester.ID,
		FechaReserva: input.FechaReserva,
		HoraInicio:   input.HoraInicio,
		HoraFin:      input.HoraFin,
		Estado:       initialStatus(requester.Rol),
	}

	if err := s.reservations.CreateIfFree(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			if s.metrics != nil {
				s.metrics.RecordSlotConflict()
			}
			return nil, appErrors.ErrSlotTaken
		}
		return nil, err
	}

	if s.availability != nil {
		s.availability.Invalidate(ctx, reservation.EscenarioID)
	}
	s.record(requester.ID, models.AuditActionReservaCreada, reservation.ID, map[string]string{
		"escenario_id": reservation.EscenarioID,
		"fecha":        reservation.FechaReserva.Format("2006-01-02"),
		"estado":       string(reservation.Estado),
	})
	return reservation, nil
}

// Get fetches one reservation. Non-admin requesters only see their own.
func (s *ReservationService) Get(ctx context.Context, id string, requester *models.Profile) (*models.ReservationDetail, error) {
	detail, err := s.reservations.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "reserva no encontrada")
		}
		return nil, err
	}
	if requester == nil || (requester.Rol != models.RoleAdmin && detail.UsuarioID != requester.ID) {
		return nil, appErrors.ErrForbidden
	}
	return detail, nil
}

// List returns reservations visible to the requester. Non-admin requesters
// are always scoped to their own reservations regardless of the filter.
func (s *ReservationService) List(ctx context.Context, filter models.ReservationFilter, requester *models.Profile) ([]models.ReservationDetail, int, error) {
	if requester == nil {
		return nil, 0, appErrors.ErrUnauthorized
	}
	if requester.Rol != models.RoleAdmin {
		filter.UsuarioID = requester.ID
	}
	return s.reservations.List(ctx, filter)
}

// ChangeStatus decides a pending reservation. Only PENDIENTE_APROBACION
// reservations can move, and only to APROBADA or RECHAZADA.
func (s *ReservationService) ChangeStatus(ctx context.Context, id string, estado models.ReservationStatus, actor *models.Profile) (*models.Reservation, error) {
	if estado != models.ReservationApproved && estado != models.ReservationRejected {
		return nil, appErrors.Clone(appErrors.ErrValidation, "estado debe ser APROBADA o RECHAZADA")
	}

	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "reserva no encontrada")
		}
		return nil, err
	}

	updated, err := s.reservations.UpdateEstado(ctx, id, estado)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, appErrors.Clone(appErrors.ErrConflict, "la reserva ya fue decidida")
	}

	current.Estado = estado
	if s.availability != nil && !estado.Occupying() {
		// Only a rejection frees the slot. Pending and approved reservations
		// both occupy it, and creation already refreshed the cache.
		s.availability.Invalidate(ctx, current.EscenarioID)
	}
	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}
	s.record(actorID, models.AuditActionReservaDecidida, id, map[string]string{
		"estado": string(estado),
	})
	return current, nil
}

// ValidateEntry resolves a scanned reservation QR code at the venue gate.
// Approval is the only gate: the same code can be scanned any number of
// times and answers yes while the reservation stays APROBADA. Every scan
// lands in the audit trail so duplicate entries stay visible.
func (s *ReservationService) ValidateEntry(ctx context.Context, reservationID string, actor *models.Profile) (*models.EntryValidation, error) {
	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}

	detail, err := s.reservations.GetDetail(ctx, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.record(actorID, models.AuditActionEntradaValidada, reservationID, map[string]string{"permitido": "false", "motivo": "reserva no encontrada"})
			return &models.EntryValidation{Permitido: false, Motivo: "reserva no encontrada"}, nil
		}
		return nil, err
	}

	result := &models.EntryValidation{Permitido: true, Reserva: detail}
	if detail.Estado != models.ReservationApproved {
		result.Permitido = false
		result.Motivo = fmt.Sprintf("la reserva no está aprobada (estado: %s)", detail.Estado)
	}

	s.record(actorID, models.AuditActionEntradaValidada, reservationID, map[string]string{
		"permitido": boolString(result.Permitido),
		"motivo":    result.Motivo,
	})
	return result, nil
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func (s *ReservationService) record(actorID, action, resourceID string, detail map[string]string) {
	if s.audit == nil {
		return
	}
	payload, _ := json.Marshal(detail)
	var actor *string
	if actorID != "" {
		actor = &actorID
	}
	s.audit.Record(models.AuditEntry{
		UsuarioID:  actor,
		Action:     action,
		Resource:   "reservas",
		ResourceID: &resourceID,
		Detail:     payload,
	})
}
