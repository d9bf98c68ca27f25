package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func (s *Store) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	defer s.lock(ctx)()

	entry.ID = uint(len(s.st.auditLogs) + 1)
	entry.CreatedAt = s.now()
	s.st.auditLogs = append(s.st.auditLogs, *entry)
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	defer s.lock(ctx)()

	matched := []models.AuditLog{}
	for _, l := range s.st.auditLogs {
		switch {
		case l.GarageID != f.GarageID:
		case f.Action != "" && l.Action != f.Action:
		case f.Entity != "" && l.Entity != f.Entity:
		case f.From != nil && l.CreatedAt.Before(*f.From):
		case f.To != nil && !l.CreatedAt.Before(*f.To):
		default:
			matched = append(matched, l)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := f.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}
	return matched[start:end], total, nil
}

var _ audit.Store = (*Store)(nil)
