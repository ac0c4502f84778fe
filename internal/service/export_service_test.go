package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
)

func exportDetails() map[string]*models.ReservationDetail {
	return map[string]*models.ReservationDetail{
		"res-1": {
			Reservation: models.Reservation{
				ID: "res-1", UsuarioID: "usr-1",
				FechaReserva: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				HoraInicio:   "10:00:00", HoraFin: "11:00:00",
				Estado: models.ReservationApproved,
			},
			EscenarioNombre: "Cancha de fútbol",
			UsuarioNombre:   "Ana Torres",
			UsuarioRol:      models.RoleMemberUPTC,
		},
	}
}

func TestExportReservationsCSV(t *testing.T) {
	repo := &mockReservationRepo{details: exportDetails()}
	svc := NewExportService(repo, true, zap.NewNop())

	payload, contentType, err := svc.Reservations(context.Background(), models.ReservationFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "Cancha de fútbol")
	assert.Contains(t, string(payload), "APROBADA")
	assert.Contains(t, string(payload), "2026-09-01")
}

func TestExportReservationsPDF(t *testing.T) {
	repo := &mockReservationRepo{details: exportDetails()}
	svc := NewExportService(repo, true, zap.NewNop())

	payload, contentType, err := svc.Reservations(context.Background(), models.ReservationFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestExportReservationsUnknownFormat(t *testing.T) {
	svc := NewExportService(&mockReservationRepo{}, true, zap.NewNop())
	_, _, err := svc.Reservations(context.Background(), models.ReservationFilter{}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestExportReservationsDisabled(t *testing.T) {
	svc := NewExportService(&mockReservationRepo{}, false, zap.NewNop())
	_, _, err := svc.Reservations(context.Background(), models.ReservationFilter{}, "csv")
	require.Error(t, err)
	assert.Equal(t, 403, appErrors.FromError(err).Status)
}
