package models

import "time"

// Blackout is an exceptional closure overriding the weekly schedule for a
// specific date and time window (maintenance, tournaments, ...).
type Blackout struct {
	ID          string    `db:"id" json:"id"`
	EscenarioID string    `db:"escenario_id" json:"escenario_id"`
	Fecha       time.Time `db:"fecha" json:"fecha"`
	HoraInicio  string    `db:"hora_inicio" json:"hora_inicio"`
	HoraFin     string    `db:"hora_fin" json:"hora_fin"`
	Motivo      string    `db:"motivo" json:"motivo"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
