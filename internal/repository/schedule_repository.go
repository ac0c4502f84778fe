package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

const scheduleColumns = `id, escenario_id, dia_semana, hora_apertura, hora_cierre, created_at`

// ScheduleRepository persists recurring weekly opening windows.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a schedule repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetForDay returns the schedule row for (venue, day-of-week), or nil when
// the venue is closed that day.
func (r *ScheduleRepository) GetForDay(ctx context.Context, escenarioID string, diaSemana int) (*models.WeeklySchedule, error) {
	query := fmt.Sprintf("SELECT %s FROM horarios_escenarios WHERE escenario_id = $1 AND dia_semana = $2", scheduleColumns)
	var schedule models.WeeklySchedule
	if err := r.db.GetContext(ctx, &schedule, query, escenarioID, diaSemana); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get horario: %w", err)
	}
	return &schedule, nil
}

// ListByVenue returns all schedule rows for a venue ordered by day.
func (r *ScheduleRepository) ListByVenue(ctx context.Context, escenarioID string) ([]models.WeeklySchedule, error) {
	query := fmt.Sprintf("SELECT %s FROM horarios_escenarios WHERE escenario_id = $1 ORDER BY dia_semana ASC", scheduleColumns)
	var schedules []models.WeeklySchedule
	if err := r.db.SelectContext(ctx, &schedules, query, escenarioID); err != nil {
		return nil, fmt.Errorf("list horarios: %w", err)
	}
	return schedules, nil
}

// Create inserts a schedule row.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.WeeklySchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO horarios_escenarios (id, escenario_id, dia_semana, hora_apertura, hora_cierre, created_at)
VALUES (:id, :escenario_id, :dia_semana, :hora_apertura, :hora_cierre, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		return fmt.Errorf("create horario: %w", err)
	}
	return nil
}

// Delete removes a schedule row.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM horarios_escenarios WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete horario: %w", err)
	}
	return nil
}
