package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/pkg/jobs"
)

type mockAuditStore struct {
	entries []models.AuditEntry
}

func (m *mockAuditStore) Create(ctx context.Context, entry *models.AuditEntry) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockAuditStore) ListRecent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	if limit > 0 && limit < len(m.entries) {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func TestAuditHandlePersistsEntry(t *testing.T) {
	store := &mockAuditStore{}
	svc := NewAuditService(store, AuditQueueConfig{}, zap.NewNop())

	resourceID := "res-1"
	err := svc.handle(context.Background(), jobs.Job{Payload: models.AuditEntry{
		Action:     models.AuditActionEntradaValidada,
		Resource:   "reservas",
		ResourceID: &resourceID,
	}})
	require.NoError(t, err)
	require.Len(t, store.entries, 1)
	assert.Equal(t, models.AuditActionEntradaValidada, store.entries[0].Action)
}

func TestAuditHandleRejectsUnknownPayload(t *testing.T) {
	svc := NewAuditService(&mockAuditStore{}, AuditQueueConfig{}, zap.NewNop())
	err := svc.handle(context.Background(), jobs.Job{Payload: "not-an-entry"})
	require.Error(t, err)
}

func TestAuditRecentReadsBackEntries(t *testing.T) {
	store := &mockAuditStore{entries: []models.AuditEntry{
		{ID: "a-1", Action: models.AuditActionReservaCreada},
		{ID: "a-2", Action: models.AuditActionReservaDecidida},
		{ID: "a-3", Action: models.AuditActionEntradaValidada},
	}}
	svc := NewAuditService(store, AuditQueueConfig{}, zap.NewNop())

	entries, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a-1", entries[0].ID)
}
