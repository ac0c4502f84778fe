package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

// ErrSlotConflict is returned by CreateIfFree when the requested window
// overlaps an occupying reservation that already exists.
var ErrSlotConflict = errors.New("slot already reserved")

const reservationColumns = `id, escenario_id, usuario_id, fecha_reserva, hora_inicio, hora_fin, estado, comprobante_url, created_at, updated_at`

const reservationDetailColumns = `r.id, r.escenario_id, r.usuario_id, r.fecha_reserva, r.hora_inicio, r.hora_fin,
r.estado, r.comprobante_url, r.created_at, r.updated_at,
e.nombre AS escenario_nombre, u.nombre_completo AS usuario_nombre, u.rol AS usuario_rol`

// ReservationRepository persists reservations.
type ReservationRepository struct {
	db *sqlx.DB
}

// NewReservationRepository constructs a reservation repository.
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CreateIfFree inserts the reservation only when no occupying reservation
// overlaps the requested window. The existence check and the insert run as a
// single statement so two concurrent requests for the same slot cannot both
// succeed. Returns ErrSlotConflict when the slot was already taken.
func (r *ReservationRepository) CreateIfFree(ctx context.Context, reservation *models.Reservation) error {
	if reservation.ID == "" {
		reservation.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	const query = `INSERT INTO reservas (id, escenario_id, usuario_id, fecha_reserva, hora_inicio, hora_fin, estado, comprobante_url, created_at, updated_at)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
WHERE NOT EXISTS (
    SELECT 1 FROM reservas
    WHERE escenario_id = $2
      AND fecha_reserva = $4
      AND estado IN ('PENDIENTE_APROBACION', 'APROBADA')
      AND hora_inicio < $6
      AND hora_fin > $5
)`
	result, err := r.db.ExecContext(ctx, query,
		reservation.ID,
		reservation.EscenarioID,
		reservation.UsuarioID,
		reservation.FechaReserva.Format("2006-01-02"),
		reservation.HoraInicio,
		reservation.HoraFin,
		string(reservation.Estado),
		reservation.ComprobanteURL,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			// 23P01 exclusion_violation, 23505 unique_violation: a
			// database-level constraint caught the race instead.
			if pqErr.Code == "23P01" || pqErr.Code == "23505" {
				return ErrSlotConflict
			}
		}
		return fmt.Errorf("create reserva: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("create reserva rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSlotConflict
	}
	return nil
}

// OccupiedIntervals returns the time windows of occupying reservations for
// (venue, date).
func (r *ReservationRepository) OccupiedIntervals(ctx context.Context, escenarioID string, fecha time.Time) ([]models.Interval, error) {
	const query = `SELECT hora_inicio, hora_fin FROM reservas
WHERE escenario_id = $1 AND fecha_reserva = $2
  AND estado IN ('PENDIENTE_APROBACION', 'APROBADA')
ORDER BY hora_inicio ASC`
	var intervals []models.Interval
	if err := r.db.SelectContext(ctx, &intervals, query, escenarioID, fecha.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("list occupied intervals: %w", err)
	}
	return intervals, nil
}

// GetByID fetches a reservation.
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	query := fmt.Sprintf("SELECT %s FROM reservas WHERE id = $1", reservationColumns)
	var reservation models.Reservation
	if err := r.db.GetContext(ctx, &reservation, query, id); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetDetail fetches a reservation joined with venue and user display data.
func (r *ReservationRepository) GetDetail(ctx context.Context, id string) (*models.ReservationDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservas r
JOIN escenarios e ON e.id = r.escenario_id
JOIN usuarios u ON u.id = r.usuario_id
WHERE r.id = $1`, reservationDetailColumns)
	var detail models.ReservationDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// List returns reservation details matching the filter, newest first.
func (r *ReservationRepository) List(ctx context.Context, filter models.ReservationFilter) ([]models.ReservationDetail, int, error) {
	base := `FROM reservas r
JOIN escenarios e ON e.id = r.escenario_id
JOIN usuarios u ON u.id = r.usuario_id`
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.EscenarioID != "" {
		where = append(where, fmt.Sprintf("r.escenario_id = $%d", len(args)+1))
		args = append(args, filter.EscenarioID)
	}
	if filter.UsuarioID != "" {
		where = append(where, fmt.Sprintf("r.usuario_id = $%d", len(args)+1))
		args = append(args, filter.UsuarioID)
	}
	if filter.Estado != nil {
		where = append(where, fmt.Sprintf("r.estado = $%d", len(args)+1))
		args = append(args, string(*filter.Estado))
	}
	if filter.Desde != nil {
		where = append(where, fmt.Sprintf("r.fecha_reserva >= $%d", len(args)+1))
		args = append(args, filter.Desde.Format("2006-01-02"))
	}
	if filter.Hasta != nil {
		where = append(where, fmt.Sprintf("r.fecha_reserva <= $%d", len(args)+1))
		args = append(args, filter.Hasta.Format("2006-01-02"))
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

	query := fmt.Sprintf("SELECT %s %s WHERE %s ORDER BY r.fecha_reserva DESC, r.hora_inicio DESC LIMIT %d OFFSET %d",
		reservationDetailColumns, base, whereClause, size, offset)
	var details []models.ReservationDetail
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list reservas: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", base, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count reservas: %w", err)
	}
	return details, total, nil
}

// UpdateEstado moves a reservation out of PENDIENTE_APROBACION. Returns
// (false, nil) when the reservation was already decided or does not exist.
func (r *ReservationRepository) UpdateEstado(ctx context.Context, id string, estado models.ReservationStatus) (bool, error) {
	const query = `UPDATE reservas SET estado = $1, updated_at = $2
WHERE id = $3 AND estado = 'PENDIENTE_APROBACION'`
	result, err := r.db.ExecContext(ctx, query, string(estado), time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("update reserva estado: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update reserva estado rows affected: %w", err)
	}
	return affected > 0, nil
}

// SetComprobanteURL stores the relative path of an uploaded payment proof.
func (r *ReservationRepository) SetComprobanteURL(ctx context.Context, id, url string) error {
	const query = `UPDATE reservas SET comprobante_url = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, url, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("set comprobante url: %w", err)
	}
	return nil
}
