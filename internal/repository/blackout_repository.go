package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

const blackoutColumns = `id, escenario_id, fecha, hora_inicio, hora_fin, motivo, created_at`

// BlackoutRepository persists exceptional closures.
type BlackoutRepository struct {
	db *sqlx.DB
}

// NewBlackoutRepository constructs a blackout repository.
func NewBlackoutRepository(db *sqlx.DB) *BlackoutRepository {
	return &BlackoutRepository{db: db}
}

// IntervalsForDate returns the blocked time windows for (venue, date).
func (r *BlackoutRepository) IntervalsForDate(ctx context.Context, escenarioID string, fecha time.Time) ([]models.Interval, error) {
	const query = `SELECT hora_inicio, hora_fin FROM bloqueos_escenarios
WHERE escenario_id = $1 AND fecha = $2 ORDER BY hora_inicio ASC`
	var intervals []models.Interval
	if err := r.db.SelectContext(ctx, &intervals, query, escenarioID, fecha.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("list bloqueos for date: %w", err)
	}
	return intervals, nil
}

// ListByVenue returns blackouts for a venue, optionally restricted to a date.
func (r *BlackoutRepository) ListByVenue(ctx context.Context, escenarioID string, fecha *time.Time) ([]models.Blackout, error) {
	query := fmt.Sprintf("SELECT %s FROM bloqueos_escenarios WHERE escenario_id = $1", blackoutColumns)
	args := []interface{}{escenarioID}
	if fecha != nil {
		query += " AND fecha = $2"
		args = append(args, fecha.Format("2006-01-02"))
	}
	query += " ORDER BY fecha ASC, hora_inicio ASC"
	var blackouts []models.Blackout
	if err := r.db.SelectContext(ctx, &blackouts, query, args...); err != nil {
		return nil, fmt.Errorf("list bloqueos: %w", err)
	}
	return blackouts, nil
}

// Create inserts a blackout.
func (r *BlackoutRepository) Create(ctx context.Context, blackout *models.Blackout) error {
	if blackout.ID == "" {
		blackout.ID = uuid.NewString()
	}
	if blackout.CreatedAt.IsZero() {
		blackout.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO bloqueos_escenarios (id, escenario_id, fecha, hora_inicio, hora_fin, motivo, created_at)
VALUES (:id, :escenario_id, :fecha, :hora_inicio, :hora_fin, :motivo, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, blackout); err != nil {
		return fmt.Errorf("create bloqueo: %w", err)
	}
	return nil
}

// Delete removes a blackout.
func (r *BlackoutRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM bloqueos_escenarios WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete bloqueo: %w", err)
	}
	return nil
}
