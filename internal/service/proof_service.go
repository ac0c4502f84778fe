package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	appErrors "github.com/uptc-deportes/reservas-api/pkg/errors"
	"github.com/uptc-deportes/reservas-api/pkg/storage"
)

var allowedProofExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// ProofReservationRepository is the slice of reservation persistence the
// proof service needs.
type ProofReservationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	SetComprobanteURL(ctx context.Context, id, url string) error
}

// ProofService stores payment proofs for reservations and issues signed
// download tokens so files never leave the API unauthenticated.
type ProofService struct {
	reservations ProofReservationRepository
	storage      *storage.LocalStorage
	signer       *storage.SignedURLSigner
	audit        *AuditService
	maxFileSize  int64
	logger       *zap.Logger
}

// NewProofService constructs a proof service.
func NewProofService(
	reservations ProofReservationRepository,
	store *storage.LocalStorage,
	signer *storage.SignedURLSigner,
	audit *AuditService,
	maxFileSize int64,
	logger *zap.Logger,
) *ProofService {
	if maxFileSize <= 0 {
		maxFileSize = 5 << 20
	}
	return &ProofService{
		reservations: reservations,
		storage:      store,
		signer:       signer,
		audit:        audit,
		maxFileSize:  maxFileSize,
		logger:       logger,
	}
}

func (s *ProofService) authorize(reservation *models.Reservation, requester *models.Profile) error {
	if requester == nil {
		return appErrors.ErrUnauthorized
	}
	if requester.Rol != models.RoleAdmin && reservation.UsuarioID != requester.ID {
		return appErrors.ErrForbidden
	}
	return nil
}

// Attach stores an uploaded payment proof and links it to the reservation.
// Only the reservation owner or an admin can upload.
func (s *ProofService) Attach(ctx context.Context, reservationID, filename string, size int64, r io.Reader, requester *models.Profile) (string, error) {
	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.Clone(appErrors.ErrNotFound, "reserva no encontrada")
		}
		return "", err
	}
	if err := s.authorize(reservation, requester); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedProofExtensions[ext]; !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "el comprobante debe ser PDF o imagen (png, jpg)")
	}
	if size > s.maxFileSize {
		return "", appErrors.Clone(appErrors.ErrValidation, "el comprobante excede el tamaño máximo permitido")
	}

	relPath := path.Join("comprobantes", reservationID, uuid.NewString()+ext)
	if _, err := s.storage.SaveStream(relPath, io.LimitReader(r, s.maxFileSize)); err != nil {
		return "", fmt.Errorf("store comprobante: %w", err)
	}
	if err := s.reservations.SetComprobanteURL(ctx, reservationID, relPath); err != nil {
		return "", err
	}
	if previous := reservation.ComprobanteURL; previous != nil && *previous != "" {
		// Re-uploading replaces the proof; the superseded file goes away.
		if err := s.storage.Delete(*previous); err != nil && s.logger != nil {
			s.logger.Warn("delete replaced comprobante", zap.String("path", *previous), zap.Error(err))
		}
	}

	s.recordProof(requester.ID, models.AuditActionComprobanteSube, reservationID)
	return relPath, nil
}

// SignedDownload returns a short-lived signed token for the reservation's
// stored proof. Only the owner or an admin can request one.
func (s *ProofService) SignedDownload(ctx context.Context, reservationID string, requester *models.Profile) (string, time.Time, error) {
	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", time.Time{}, appErrors.Clone(appErrors.ErrNotFound, "reserva no encontrada")
		}
		return "", time.Time{}, err
	}
	if err := s.authorize(reservation, requester); err != nil {
		return "", time.Time{}, err
	}
	if reservation.ComprobanteURL == nil || *reservation.ComprobanteURL == "" {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrNotFound, "la reserva no tiene comprobante")
	}
	token, expiresAt, err := s.signer.Generate(reservationID, *reservation.ComprobanteURL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign comprobante token: %w", err)
	}
	return token, expiresAt, nil
}

// Resolve validates a signed token and opens the referenced file. The caller
// owns closing the handle.
func (s *ProofService) Resolve(ctx context.Context, token string) (*os.File, string, error) {
	reservationID, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrForbidden, "enlace de descarga inválido o expirado")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "comprobante no encontrado")
	}
	s.recordProof("", models.AuditActionComprobanteLeido, reservationID)
	return file, path.Base(relPath), nil
}

// CleanupExpired removes stored proof files older than ttl and reports how
// many were deleted. Runs from a background sweep, not from requests.
func (s *ProofService) CleanupExpired(ttl time.Duration) (int, error) {
	deleted, err := s.storage.CleanupOlderThan(ttl)
	if err != nil {
		return 0, err
	}
	if len(deleted) > 0 && s.logger != nil {
		s.logger.Info("removed expired comprobantes", zap.Int("count", len(deleted)))
	}
	return len(deleted), nil
}

func (s *ProofService) recordProof(actorID, action, reservationID string) {
	if s.audit == nil {
		return
	}
	var actor *string
	if actorID != "" {
		actor = &actorID
	}
	s.audit.Record(models.AuditEntry{
		UsuarioID:  actor,
		Action:     action,
		Resource:   "reservas",
		ResourceID: &reservationID,
	})
}
