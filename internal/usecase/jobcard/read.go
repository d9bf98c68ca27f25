package jobcard

import (
	"context"

	domain "github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type List struct {
	jobs domain.Repository
}

func NewList(jobs domain.Repository) *List {
	return &List{jobs: jobs}
}

// Execute lists newest first. An empty status lists every card.
func (uc *List) Execute(ctx context.Context, garageID, status string) ([]models.JobCard, error) {
	if status == "" {
		return uc.jobs.ListJobCards(ctx, garageID, nil)
	}

	s, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.jobs.ListJobCards(ctx, garageID, &s)
}

type Get struct {
	jobs domain.Repository
}

func NewGet(jobs domain.Repository) *Get {
	return &Get{jobs: jobs}
}

func (uc *Get) Execute(ctx context.Context, garageID, id string) (*models.JobCard, error) {
	return uc.jobs.GetJobCard(ctx, garageID, id)
}
