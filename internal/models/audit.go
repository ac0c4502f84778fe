package models

import "time"

// Audit actions recorded by the API.
const (
	AuditActionReservaCreada    = "RESERVA_CREADA"
	AuditActionReservaDecidida  = "RESERVA_DECIDIDA"
	AuditActionEntradaValidada  = "ENTRADA_VALIDADA"
	AuditActionEscenarioCambio  = "ESCENARIO_CAMBIO"
	AuditActionComprobanteSube  = "COMPROBANTE_SUBIDO"
	AuditActionComprobanteLeido = "COMPROBANTE_DESCARGADO"
)

// AuditEntry is one row of the asynchronous audit trail.
type AuditEntry struct {
	ID         string    `db:"id" json:"id"`
	UsuarioID  *string   `db:"usuario_id" json:"usuario_id,omitempty"`
	Action     string    `db:"action" json:"action"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID *string   `db:"resource_id" json:"resource_id,omitempty"`
	Detail     []byte    `db:"detail" json:"detail,omitempty"`
	IPAddress  string    `db:"ip_address" json:"ip_address"`
	UserAgent  string    `db:"user_agent" json:"user_agent"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
