package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type JobCardGormRepository struct {
	db *gorm.DB
}

func NewJobCardGormRepository(db *gorm.DB) *JobCardGormRepository {
	return &JobCardGormRepository{db: db}
}

func (r *JobCardGormRepository) CreateJobCard(
	ctx context.Context,
	jc *models.JobCard,
) error {
	return conn(ctx, r.db).Create(jc).Error
}

func (r *JobCardGormRepository) GetJobCard(
	ctx context.Context,
	garageID, id string,
) (*models.JobCard, error) {

	var jc models.JobCard
	if err := conn(ctx, r.db).
		Where("id = ? AND garage_id = ?", id, garageID).
		First(&jc).Error; err != nil {
		return nil, notFound(err, "job_card_not_found")
	}
	return &jc, nil
}

func (r *JobCardGormRepository) GetJobCardForUpdate(
	ctx context.Context,
	garageID, id string,
) (*models.JobCard, error) {

	var jc models.JobCard
	if err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND garage_id = ?", id, garageID).
		First(&jc).Error; err != nil {
		return nil, notFound(err, "job_card_not_found")
	}
	return &jc, nil
}

func (r *JobCardGormRepository) UpdateJobCard(
	ctx context.Context,
	jc *models.JobCard,
) error {

	res := conn(ctx, r.db).
		Model(&models.JobCard{}).
		Where("id = ? AND garage_id = ?", jc.ID, jc.GarageID).
		Updates(map[string]any{
			"complaint":      jc.Complaint,
			"status":         jc.Status,
			"spare_parts":    jc.SpareParts,
			"service_charge": jc.ServiceCharge,
			"total_amount":   jc.TotalAmount,
			"completed_at":   jc.CompletedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("job_card_not_found")
	}
	return nil
}

func (r *JobCardGormRepository) UpdateJobCardDetails(
	ctx context.Context,
	jc *models.JobCard,
) error {

	res := conn(ctx, r.db).
		Model(&models.JobCard{}).
		Where("id = ? AND garage_id = ? AND status = ?", jc.ID, jc.GarageID, string(jobcard.StatusPending)).
		Updates(map[string]any{
			"complaint":      jc.Complaint,
			"spare_parts":    jc.SpareParts,
			"service_charge": jc.ServiceCharge,
			"total_amount":   jc.TotalAmount,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetJobCard(ctx, jc.GarageID, jc.ID); err != nil {
			return err
		}
		return httperr.ErrConflict("job_card_completed")
	}
	return nil
}

func (r *JobCardGormRepository) ListJobCards(
	ctx context.Context,
	garageID string,
	status *jobcard.Status,
) ([]models.JobCard, error) {

	q := conn(ctx, r.db).Where("garage_id = ?", garageID)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var cards []models.JobCard
	if err := q.Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Compile-time check
var _ jobcard.Repository = (*JobCardGormRepository)(nil)
