package models

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "PENDIENTE_APROBACION"
	ReservationApproved ReservationStatus = "APROBADA"
	ReservationRejected ReservationStatus = "RECHAZADA"
)

// Valid reports whether the status belongs to the known set.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationApproved, ReservationRejected:
		return true
	default:
		return false
	}
}

// Occupying reports whether a reservation in this status blocks its time
// slot. RECHAZADA reservations free their slot.
func (s ReservationStatus) Occupying() bool {
	return s == ReservationPending || s == ReservationApproved
}

// Reservation books a venue time window for a user on a specific date.
type Reservation struct {
	ID             string            `db:"id" json:"id"`
	EscenarioID    string            `db:"escenario_id" json:"escenario_id"`
	UsuarioID      string            `db:"usuario_id" json:"usuario_id"`
	FechaReserva   time.Time         `db:"fecha_reserva" json:"fecha_reserva"`
	HoraInicio     string            `db:"hora_inicio" json:"hora_inicio"`
	HoraFin        string            `db:"hora_fin" json:"hora_fin"`
	Estado         ReservationStatus `db:"estado" json:"estado"`
	ComprobanteURL *string           `db:"comprobante_url" json:"comprobante_url,omitempty"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at" json:"updated_at"`
}

// ReservationDetail joins the reservation with venue and user display data.
type ReservationDetail struct {
	Reservation
	EscenarioNombre string   `db:"escenario_nombre" json:"escenario_nombre"`
	UsuarioNombre   string   `db:"usuario_nombre" json:"usuario_nombre"`
	UsuarioRol      UserRole `db:"usuario_rol" json:"usuario_rol"`
}

// ReservationFilter narrows down reservation listings.
type ReservationFilter struct {
	EscenarioID string
	UsuarioID   string
	Estado      *ReservationStatus
	Desde       *time.Time
	Hasta       *time.Time
	Page        int
	PageSize    int
}

// EntryValidation is the outcome of scanning a reservation QR code at the
// venue entrance.
type EntryValidation struct {
	Permitido bool               `json:"permitido"`
	Motivo    string             `json:"motivo,omitempty"`
	Reserva   *ReservationDetail `json:"reserva,omitempty"`
}
