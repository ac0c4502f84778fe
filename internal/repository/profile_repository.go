package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

const profileColumns = `id, nombre_completo, rol, avatar_url, created_at, updated_at`

// ProfileRepository reads user profiles. Accounts are provisioned by the
// identity provider, so this repository never creates rows.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository constructs a profile repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByID fetches the profile for a subject identifier.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := fmt.Sprintf("SELECT %s FROM usuarios WHERE id = $1", profileColumns)
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns profiles matching the filter.
func (r *ProfileRepository) List(ctx context.Context, filter models.ProfileFilter) ([]models.Profile, int, error) {
	base := "FROM usuarios"
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Rol != nil {
		where = append(where, fmt.Sprintf("rol = $%d", len(args)+1))
		args = append(args, string(*filter.Rol))
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("nombre_completo ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s WHERE %s ORDER BY nombre_completo ASC LIMIT %d OFFSET %d",
		profileColumns, base, whereClause, size, offset)
	var profiles []models.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list usuarios: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", base, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count usuarios: %w", err)
	}
	return profiles, total, nil
}
