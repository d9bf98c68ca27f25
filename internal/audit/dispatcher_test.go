package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type recordingStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
	fail    bool
}

func (s *recordingStore) CreateAuditLog(_ context.Context, e *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("boom")
	}
	s.entries = append(s.entries, *e)
	return nil
}

func (s *recordingStore) ListAuditLogs(context.Context, Filter) ([]models.AuditLog, int64, error) {
	return nil, 0, nil
}

func TestDispatcher_WritesEvents(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store))

	entityID := "jc-1"
	d.Dispatch(Event{
		GarageID: "g-1",
		Action:   "job_card_created",
		Entity:   "job_card",
		EntityID: &entityID,
		Metadata: map[string]any{"total": "150"},
	})
	d.Close()

	require.Len(t, store.entries, 1)
	e := store.entries[0]
	assert.Equal(t, "g-1", e.GarageID)
	assert.Equal(t, "job_card_created", e.Action)
	assert.Equal(t, "jc-1", *e.EntityID)
	assert.JSONEq(t, `{"total":"150"}`, e.Metadata)
}

func TestDispatcher_StoreFailureIsSwallowed(t *testing.T) {
	store := &recordingStore{fail: true}
	d := NewDispatcher(New(store))

	d.Dispatch(Event{GarageID: "g-1", Action: "x"})
	d.Close()

	assert.Empty(t, store.entries)
}

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 1, Limit: 50}.Offset())
	assert.Equal(t, 0, Filter{Page: 0, Limit: 50}.Offset())
	assert.Equal(t, 100, Filter{Page: 3, Limit: 50}.Offset())
}
