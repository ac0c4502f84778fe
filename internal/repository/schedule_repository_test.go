package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestGetForDayReturnsRow(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	rows := sqlmock.NewRows([]string{"id", "escenario_id", "dia_semana", "hora_apertura", "hora_cierre", "created_at"}).
		AddRow("hor-1", "esc-1", 1, "08:00:00", "18:00:00", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("WHERE escenario_id = $1 AND dia_semana = $2")).
		WithArgs("esc-1", 1).
		WillReturnRows(rows)

	schedule, err := repo.GetForDay(context.Background(), "esc-1", 1)
	require.NoError(t, err)
	require.NotNil(t, schedule)
	assert.Equal(t, "08:00:00", schedule.HoraApertura)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForDayMissingMeansClosed(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	rows := sqlmock.NewRows([]string{"id", "escenario_id", "dia_semana", "hora_apertura", "hora_cierre", "created_at"})
	mock.ExpectQuery(regexp.QuoteMeta("WHERE escenario_id = $1 AND dia_semana = $2")).
		WithArgs("esc-1", 7).
		WillReturnRows(rows)

	schedule, err := repo.GetForDay(context.Background(), "esc-1", 7)
	require.NoError(t, err)
	assert.Nil(t, schedule)
	require.NoError(t, mock.ExpectationsWereMet())
}
