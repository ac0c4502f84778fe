package service

import (
	"fmt"
	"strconv"

	"github.com/uptc-deportes/reservas-api/internal/models"
)

// hourOf extracts the hour component from an HH:MM:SS string. Malformed
// values collapse to 0, matching a closed window.
func hourOf(t string) int {
	if len(t) < 2 {
		return 0
	}
	h, err := strconv.Atoi(t[:2])
	if err != nil {
		return 0
	}
	return h
}

// overlapsAny reports whether the half-open window [inicio, fin) collides
// with any of the given intervals. Times are zero-padded HH:MM:SS strings,
// so lexicographic comparison is chronological comparison.
func overlapsAny(inicio, fin string, occupied []models.Interval) bool {
	for _, o := range occupied {
		if inicio < o.HoraFin && fin > o.HoraInicio {
			return true
		}
	}
	return false
}

// FreeBlocks slices the day's opening window into one-hour blocks and drops
// every block that collides with an occupied interval. A nil schedule means
// the venue is closed that day and yields no blocks.
func FreeBlocks(schedule *models.WeeklySchedule, occupied []models.Interval) []models.TimeBlock {
	blocks := []models.TimeBlock{}
	if schedule == nil {
		return blocks
	}

	opening := hourOf(schedule.HoraApertura)
	closing := hourOf(schedule.HoraCierre)

	for h := opening; h < closing; h++ {
		inicio := fmt.Sprintf("%02d:00:00", h)
		fin := fmt.Sprintf("%02d:00:00", h+1)
		if overlapsAny(inicio, fin, occupied) {
			continue
		}
		blocks = append(blocks, models.TimeBlock{
			HoraInicio: inicio,
			HoraFin:    fin,
			Etiqueta:   fmt.Sprintf("%d:00 - %d:00", h, h+1),
		})
	}
	return blocks
}
