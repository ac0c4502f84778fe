package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

func newReservationRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func sampleReservation() *models.Reservation {
	return &models.Reservation{
		EscenarioID:  "esc-1",
		UsuarioID:    "usr-1",
		FechaReserva: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		HoraInicio:   "10:00:00",
		HoraFin:      "11:00:00",
		Estado:       models.ReservationPending,
	}
}

func TestCreateIfFreeInserts(t *testing.T) {
	db, mock, cleanup := newReservationRepoMock(t)
	defer cleanup()
	repo := NewReservationRepository(db)

	mock.ExpectExec("INSERT INTO reservas").
		WithArgs(sqlmock.AnyArg(), "esc-1", "usr-1", "2026-09-01", "10:00:00", "11:00:00",
			string(models.ReservationPending), nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	reservation := sampleReservation()
	err := repo.CreateIfFree(context.Background(), reservation)
	require.NoError(t, err)
	assert.NotEmpty(t, reservation.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfFreeZeroRowsMeansConflict(t *testing.T) {
	db, mock, cleanup := newReservationRepoMock(t)
	defer cleanup()
	repo := NewReservationRepository(db)

	mock.ExpectExec("INSERT INTO reservas").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateIfFree(context.Background(), sampleReservation())
	require.ErrorIs(t, err, ErrSlotConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfFreeConstraintViolationMeansConflict(t *testing.T) {
	db, mock, cleanup := newReservationRepoMock(t)
	defer cleanup()
	repo := NewReservationRepository(db)

	mock.ExpectExec("INSERT INTO reservas").
		WillReturnError(&pq.Error{Code: "23P01"})

	err := repo.CreateIfFree(context.Background(), sampleReservation())
	require.ErrorIs(t, err, ErrSlotConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOccupiedIntervalsSkipsRejected(t *testing.T) {
	db, mock, cleanup := newReservationRepoMock(t)
	defer cleanup()
	repo := NewReservationRepository(db)

	rows := sqlmock.NewRows([]string{"hora_inicio", "hora_fin"}).
		AddRow("10:00:00", "11:00:00")
	mock.ExpectQuery(regexp.QuoteMeta("estado IN ('PENDIENTE_APROBACION', 'APROBADA')")).
		WithArgs("esc-1", "2026-09-01").
		WillReturnRows(rows)

	intervals, err := repo.OccupiedIntervals(context.Background(), "esc-1", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, "10:00:00", intervals[0].HoraInicio)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEstadoGuardedByPending(t *testing.T) {
	db, mock, cleanup := newReservationRepoMock(t)
	defer cleanup()
	repo := NewReservationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("estado = 'PENDIENTE_APROBACION'")).
		WithArgs(string(models.ReservationApproved), sqlmock.AnyArg(), "res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateEstado(context.Background(), "res-1", models.ReservationApproved)
	require.NoError(t, err)
	assert.True(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEstadoAlreadyDecided(t *testing.T) {
	db, mock, cleanup := newReservationRepoMock(t)
	defer cleanup()
	repo := NewReservationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("estado = 'PENDIENTE_APROBACION'")).
		WithArgs(string(models.ReservationRejected), sqlmock.AnyArg(), "res-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateEstado(context.Background(), "res-1", models.ReservationRejected)
	require.NoError(t, err)
	assert.False(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}
