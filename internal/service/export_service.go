package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
	"github.com/uptc-deportes/reservas-api/pkg/export"
)

var reservationExportHeaders = []string{
	"Escenario", "Usuario", "Rol", "Fecha", "Hora inicio", "Hora fin", "Estado",
}

// ExportService renders reservation listings as CSV or PDF documents.
type ExportService struct {
	reservations ReservationRepository
	csv          *export.CSVExporter
	pdf          *export.PDFExporter
	enabled      bool
	logger       *zap.Logger
}

// NewExportService constructs an export service.
func NewExportService(reservations ReservationRepository, enabled bool, logger *zap.Logger) *ExportService {
	return &ExportService{
		reservations: reservations,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		enabled:      enabled,
		logger:       logger,
	}
}

// Reservations renders all reservations matching the filter in the requested
// format ("csv" or "pdf"). Returns the document bytes and its content type.
func (s *ExportService) Reservations(ctx context.Context, filter models.ReservationFilter, format string) ([]byte, string, error) {
	if !s.enabled {
		return nil, "", appErrors.Clone(appErrors.ErrForbidden, "exportaciones deshabilitadas")
	}

	// Exports ignore pagination and dump the full filtered set.
	filter.Page = 1
	filter.PageSize = 100

	dataset := export.Dataset{Headers: reservationExportHeaders}
	for {
		page, total, err := s.reservations.List(ctx, filter)
		if err != nil {
			return nil, "", err
		}
		for _, detail := range page {
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Escenario":   detail.EscenarioNombre,
				"Usuario":     detail.UsuarioNombre,
				"Rol":         string(detail.UsuarioRol),
				"Fecha":       detail.FechaReserva.Format("2006-01-02"),
				"Hora inicio": detail.HoraInicio,
				"Hora fin":    detail.HoraFin,
				"Estado":      string(detail.Estado),
			})
		}
		if len(dataset.Rows) >= total || len(page) == 0 {
			break
		}
		filter.Page++
	}

	switch strings.ToLower(format) {
	case "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", fmt.Errorf("render csv export: %w", err)
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, "Reservas de escenarios deportivos")
		if err != nil {
			return nil, "", fmt.Errorf("render pdf export: %w", err)
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "formato debe ser csv o pdf")
	}
}
