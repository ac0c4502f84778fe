package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

const venueColumns = `id, nombre, descripcion, aforo, tarifa_hora, imagen_url, estado, created_at, updated_at`

// VenueRepository persists sports venues.
type VenueRepository struct {
	db *sqlx.DB
}

// NewVenueRepository constructs a venue repository.
func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// List returns venues matching the filter.
func (r *VenueRepository) List(ctx context.Context, filter models.VenueFilter) ([]models.Venue, int, error) {
	base := "FROM escenarios"
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Estado != nil {
		where = append(where, fmt.Sprintf("estado = $%d", len(args)+1))
		args = append(args, string(*filter.Estado))
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(nombre ILIKE $%d OR descripcion ILIKE $%d)", len(args)+1, len(args)+1))
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

	query := fmt.Sprintf("SELECT %s %s WHERE %s ORDER BY nombre ASC LIMIT %d OFFSET %d",
		venueColumns, base, whereClause, size, offset)
	var venues []models.Venue
	if err := r.db.SelectContext(ctx, &venues, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list escenarios: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", base, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count escenarios: %w", err)
	}
	return venues, total, nil
}

// GetByID fetches a venue.
func (r *VenueRepository) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	query := fmt.Sprintf("SELECT %s FROM escenarios WHERE id = $1", venueColumns)
	var venue models.Venue
	if err := r.db.GetContext(ctx, &venue, query, id); err != nil {
		return nil, err
	}
	return &venue, nil
}

// Create inserts a venue.
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	if venue.ID == "" {
		venue.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	venue.CreatedAt = now
	venue.UpdatedAt = now
	query := `INSERT INTO escenarios (id, nombre, descripcion, aforo, tarifa_hora, imagen_url, estado, created_at, updated_at)
VALUES (:id, :nombre, :descripcion, :aforo, :tarifa_hora, :imagen_url, :estado, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, venue); err != nil {
		return fmt.Errorf("create escenario: %w", err)
	}
	return nil
}

// Update modifies a venue.
func (r *VenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	venue.UpdatedAt = time.Now().UTC()
	query := `UPDATE escenarios SET nombre = :nombre, descripcion = :descripcion, aforo = :aforo,
tarifa_hora = :tarifa_hora, imagen_url = :imagen_url, estado = :estado, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, venue); err != nil {
		return fmt.Errorf("update escenario: %w", err)
	}
	return nil
}

// Delete removes a venue.
func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM escenarios WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete escenario: %w", err)
	}
	return nil
}
