package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusValid(t *testing.T) {
	assert.True(t, ReservationPending.Valid())
	assert.True(t, ReservationApproved.Valid())
	assert.True(t, ReservationRejected.Valid())
	assert.False(t, ReservationStatus("CANCELADA").Valid())
	assert.False(t, ReservationStatus("").Valid())
}

// Pending and approved reservations both block their slot; only a rejected
// one frees it again.
func TestReservationStatusOccupying(t *testing.T) {
	assert.True(t, ReservationPending.Occupying())
	assert.True(t, ReservationApproved.Occupying())
	assert.False(t, ReservationRejected.Occupying())
}
