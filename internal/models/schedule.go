package models

import "time"

// WeeklySchedule is a recurring opening window for a venue on one day of the
// week. Days run 1–7 Monday-first. Times are zero-padded HH:MM:SS; only the
// hour component participates in block generation.
type WeeklySchedule struct {
	ID           string    `db:"id" json:"id"`
	EscenarioID  string    `db:"escenario_id" json:"escenario_id"`
	DiaSemana    int       `db:"dia_semana" json:"dia_semana"`
	HoraApertura string    `db:"hora_apertura" json:"hora_apertura"`
	HoraCierre   string    `db:"hora_cierre" json:"hora_cierre"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
