package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func (s *Store) CreateJobCard(ctx context.Context, jc *models.JobCard) error {
	defer s.lock(ctx)()

	if _, ok := s.st.customers[jc.CustomerID]; !ok {
		return httperr.ErrNotFound("customer_not_found")
	}

	now := s.now()
	if jc.ID == "" {
		jc.ID = uuid.NewString()
	}
	if jc.Status == "" {
		jc.Status = string(jobcard.InitialStatus())
	}
	jc.CreatedAt, jc.UpdatedAt = now, now
	s.st.jobCards[jc.ID] = copyJobCard(*jc)
	return nil
}

func (s *Store) GetJobCard(ctx context.Context, garageID, id string) (*models.JobCard, error) {
	defer s.lock(ctx)()
	return s.jobCard(garageID, id)
}

// GetJobCardForUpdate needs no row lock here: the caller's transaction
// already holds the store mutex.
func (s *Store) GetJobCardForUpdate(ctx context.Context, garageID, id string) (*models.JobCard, error) {
	defer s.lock(ctx)()
	return s.jobCard(garageID, id)
}

func (s *Store) UpdateJobCard(ctx context.Context, jc *models.JobCard) error {
	defer s.lock(ctx)()

	current, ok := s.st.jobCards[jc.ID]
	if !ok || current.GarageID != jc.GarageID {
		return httperr.ErrNotFound("job_card_not_found")
	}

	current.Complaint = jc.Complaint
	current.Status = jc.Status
	current.SpareParts = jc.SpareParts
	current.ServiceCharge = jc.ServiceCharge
	current.TotalAmount = jc.TotalAmount
	current.CompletedAt = jc.CompletedAt
	current.UpdatedAt = s.now()
	s.st.jobCards[jc.ID] = copyJobCard(current)

	*jc = copyJobCard(current)
	return nil
}

func (s *Store) UpdateJobCardDetails(ctx context.Context, jc *models.JobCard) error {
	defer s.lock(ctx)()

	current, ok := s.st.jobCards[jc.ID]
	if !ok || current.GarageID != jc.GarageID {
		return httperr.ErrNotFound("job_card_not_found")
	}
	if current.Status != string(jobcard.StatusPending) {
		return httperr.ErrConflict("job_card_completed")
	}

	current.Complaint = jc.Complaint
	current.SpareParts = jc.SpareParts
	current.ServiceCharge = jc.ServiceCharge
	current.TotalAmount = jc.TotalAmount
	current.UpdatedAt = s.now()
	s.st.jobCards[jc.ID] = copyJobCard(current)

	*jc = copyJobCard(current)
	return nil
}

func (s *Store) ListJobCards(ctx context.Context, garageID string, status *jobcard.Status) ([]models.JobCard, error) {
	defer s.lock(ctx)()

	out := []models.JobCard{}
	for _, jc := range s.st.jobCards {
		if jc.GarageID != garageID {
			continue
		}
		if status != nil && jc.Status != string(*status) {
			continue
		}
		out = append(out, copyJobCard(jc))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) jobCard(garageID, id string) (*models.JobCard, error) {
	jc, ok := s.st.jobCards[id]
	if !ok || jc.GarageID != garageID {
		return nil, httperr.ErrNotFound("job_card_not_found")
	}
	jc = copyJobCard(jc)
	return &jc, nil
}

var _ jobcard.Repository = (*Store)(nil)
