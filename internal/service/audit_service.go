package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/pkg/jobs"
)

// AuditStore persists and reads back audit entries.
type AuditStore interface {
	Create(ctx context.Context, entry *models.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

// AuditService records audit trail entries asynchronously through an
// in-memory worker queue so request latency never pays for the insert.
type AuditService struct {
	repo   AuditStore
	queue  *jobs.Queue
	logger *zap.Logger
}

// AuditQueueConfig tunes the background queue.
type AuditQueueConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
}

// NewAuditService constructs the service and its backing queue. Call Start
// before recording and Stop during shutdown.
func NewAuditService(repo AuditStore, cfg AuditQueueConfig, logger *zap.Logger) *AuditService {
	s := &AuditService{repo: repo, logger: logger}
	s.queue = jobs.NewQueue("audit", s.handle, jobs.QueueConfig{
		Workers:    cfg.Workers,
		BufferSize: cfg.BufferSize,
		MaxRetries: cfg.MaxRetries,
		Logger:     logger,
	})
	return s
}

// Start launches the queue workers.
func (s *AuditService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the queue workers.
func (s *AuditService) Stop() {
	s.queue.Stop()
}

// Record enqueues an audit entry. Failures are logged, never surfaced to the
// caller: the business operation already succeeded.
func (s *AuditService) Record(entry models.AuditEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	err := s.queue.Enqueue(jobs.Job{
		ID:      entry.ID,
		Type:    entry.Action,
		Payload: entry,
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("enqueue audit entry", zap.String("action", entry.Action), zap.Error(err))
	}
}

// Recent returns the latest audit entries, newest first, for the admin
// console.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *AuditService) handle(ctx context.Context, job jobs.Job) error {
	entry, ok := job.Payload.(models.AuditEntry)
	if !ok {
		return fmt.Errorf("unexpected audit payload type %T", job.Payload)
	}
	return s.repo.Create(ctx, &entry)
}
