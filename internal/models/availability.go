package models

// Interval is a half-open [hora_inicio, hora_fin) time window within a day.
// Values are zero-padded HH:MM:SS strings, so lexicographic comparison is
// chronological comparison.
type Interval struct {
	HoraInicio string `db:"hora_inicio" json:"hora_inicio"`
	HoraFin    string `db:"hora_fin" json:"hora_fin"`
}

// TimeBlock is a free one-hour block offered to the client.
type TimeBlock struct {
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Etiqueta   string `json:"etiqueta"`
}
