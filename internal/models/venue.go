package models

import "time"

// VenueStatus is the lifecycle state of a sports venue.
type VenueStatus string

const (
	VenueActive      VenueStatus = "ACTIVO"
	VenueMaintenance VenueStatus = "MANTENIMIENTO"
	VenueInactive    VenueStatus = "INACTIVO"
)

// Valid reports whether the status belongs to the known set.
func (s VenueStatus) Valid() bool {
	switch s {
	case VenueActive, VenueMaintenance, VenueInactive:
		return true
	default:
		return false
	}
}

// Venue represents a reservable sports facility.
type Venue struct {
	ID          string      `db:"id" json:"id"`
	Nombre      string      `db:"nombre" json:"nombre"`
	Descripcion string      `db:"descripcion" json:"descripcion"`
	Aforo       int         `db:"aforo" json:"aforo"`
	TarifaHora  int         `db:"tarifa_hora" json:"tarifa_hora"`
	ImagenURL   *string     `db:"imagen_url" json:"imagen_url,omitempty"`
	Estado      VenueStatus `db:"estado" json:"estado"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// VenueFilter narrows down venue listings.
type VenueFilter struct {
	Estado   *VenueStatus
	Search   string
	Page     int
	PageSize int
}
