package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
)

// VenueRepository describes the persistence layer required by VenueService.
type VenueRepository interface {
	List(ctx context.Context, filter models.VenueFilter) ([]models.Venue, int, error)
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id string) error
}

// VenueService manages the venue catalogue.
type VenueService struct {
	repo         VenueRepository
	availability *AvailabilityService
	audit        *AuditService
	logger       *zap.Logger
}

// NewVenueService constructs a venue service.
func NewVenueService(repo VenueRepository, availability *AvailabilityService, audit *AuditService, logger *zap.Logger) *VenueService {
	return &VenueService{repo: repo, availability: availability, audit: audit, logger: logger}
}

// List returns venues matching the filter together with the total count.
func (s *VenueService) List(ctx context.Context, filter models.VenueFilter) ([]models.Venue, int, error) {
	return s.repo.List(ctx, filter)
}

// Get fetches a single venue.
func (s *VenueService) Get(ctx context.Context, id string) (*models.Venue, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "escenario no encontrado")
		}
		return nil, err
	}
	return venue, nil
}

// Create registers a venue. Estado defaults to ACTIVO.
func (s *VenueService) Create(ctx context.Context, venue *models.Venue, actorID string) error {
	if venue.Estado == "" {
		venue.Estado = models.VenueActive
	}
	if !venue.Estado.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "estado de escenario inválido")
	}
	if venue.Aforo < 0 || venue.TarifaHora < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "aforo y tarifa deben ser no negativos")
	}
	if err := s.repo.Create(ctx, venue); err != nil {
		return err
	}
	s.recordChange(venue, actorID)
	return nil
}

// Update modifies an existing venue and invalidates its cached availability.
func (s *VenueService) Update(ctx context.Context, venue *models.Venue, actorID string) error {
	if !venue.Estado.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "estado de escenario inválido")
	}
	if venue.Aforo < 0 || venue.TarifaHora < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "aforo y tarifa deben ser no negativos")
	}
	if _, err := s.Get(ctx, venue.ID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, venue); err != nil {
		return err
	}
	if s.availability != nil {
		s.availability.Invalidate(ctx, venue.ID)
	}
	s.recordChange(venue, actorID)
	return nil
}

// ChangeStatus moves a venue between ACTIVO, MANTENIMIENTO and INACTIVO.
func (s *VenueService) ChangeStatus(ctx context.Context, id string, estado models.VenueStatus, actorID string) (*models.Venue, error) {
	if !estado.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "estado de escenario inválido")
	}
	venue, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	venue.Estado = estado
	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, err
	}
	if s.availability != nil {
		s.availability.Invalidate(ctx, id)
	}
	s.recordChange(venue, actorID)
	return venue, nil
}

// Delete removes a venue and its cached availability.
func (s *VenueService) Delete(ctx context.Context, id string, actorID string) error {
	venue, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.availability != nil {
		s.availability.Invalidate(ctx, id)
	}
	s.recordChange(venue, actorID)
	return nil
}

func (s *VenueService) recordChange(venue *models.Venue, actorID string) {
	if s.audit == nil {
		return
	}
	detail, _ := json.Marshal(map[string]string{"nombre": venue.Nombre, "estado": string(venue.Estado)})
	var actor *string
	if actorID != "" {
		actor = &actorID
	}
	s.audit.Record(models.AuditEntry{
		UsuarioID:  actor,
		Action:     models.AuditActionEscenarioCambio,
		Resource:   "escenarios",
		ResourceID: &venue.ID,
		Detail:     detail,
	})
}
