package jobcard

import (
	"context"

	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type Repository interface {
	CreateJobCard(ctx context.Context, jc *models.JobCard) error
	GetJobCard(ctx context.Context, garageID, id string) (*models.JobCard, error)

	// GetJobCardForUpdate locks the row until the surrounding
	// transaction ends.
	GetJobCardForUpdate(ctx context.Context, garageID, id string) (*models.JobCard, error)

	UpdateJobCard(ctx context.Context, jc *models.JobCard) error

	// UpdateJobCardDetails writes complaint, lines and amounts only, and
	// only while the card is still pending.
	UpdateJobCardDetails(ctx context.Context, jc *models.JobCard) error

	// ListJobCards returns newest first; nil status means all.
	ListJobCards(ctx context.Context, garageID string, status *Status) ([]models.JobCard, error)
}
