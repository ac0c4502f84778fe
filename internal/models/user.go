package models

import "time"

// UserRole represents the closed set of roles the API recognises.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleMemberUPTC UserRole = "MEMBER_UPTC"
	RoleExternal   UserRole = "EXTERNAL"
)

// Valid reports whether the role belongs to the known set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleMemberUPTC, RoleExternal:
		return true
	default:
		return false
	}
}

// Profile is the application-side view of a user. The identity provider
// authors the account; this table only carries display data and the role.
type Profile struct {
	ID             string    `db:"id" json:"id"`
	NombreCompleto string    `db:"nombre_completo" json:"nombre_completo"`
	Rol            UserRole  `db:"rol" json:"rol"`
	AvatarURL      *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ProfileFilter captures filtering criteria for listing profiles.
type ProfileFilter struct {
	Rol      *UserRole
	Search   string
	Page     int
	PageSize int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
