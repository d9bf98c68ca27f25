package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// Store persists audit rows. Listing is always scoped to one garage.
type Store interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Filter struct {
	GarageID string
	Action   string
	Entity   string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

func (f Filter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		GarageID: ev.GarageID,
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &entry)
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// List returns one page of a garage's audit trail, newest first, and
// the total count matching the filter.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxLimit {
		f.Limit = DefaultLimit
	}
	return l.store.ListAuditLogs(ctx, f)
}
