package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	return conn(ctx, r.db).Create(entry).Error
}

func (r *AuditGormRepository) ListAuditLogs(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	q := conn(ctx, r.db).
		Model(&models.AuditLog{}).
		Where("garage_id = ?", f.GarageID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Compile-time check
var _ audit.Store = (*AuditGormRepository)(nil)
