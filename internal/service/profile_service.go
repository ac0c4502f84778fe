package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
)

// ProfileRepository reads user profiles provisioned by the identity provider.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	List(ctx context.Context, filter models.ProfileFilter) ([]models.Profile, int, error)
}

// ProfileService exposes read access to user profiles.
type ProfileService struct {
	repo   ProfileRepository
	logger *zap.Logger
}

// NewProfileService constructs a profile service.
func NewProfileService(repo ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

// Get fetches a single profile.
func (s *ProfileService) Get(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "perfil no encontrado")
		}
		return nil, err
	}
	return profile, nil
}

// List returns profiles matching the filter.
func (s *ProfileService) List(ctx context.Context, filter models.ProfileFilter) ([]models.Profile, int, error) {
	return s.repo.List(ctx, filter)
}
