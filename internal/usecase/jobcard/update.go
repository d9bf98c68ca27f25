package jobcard

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/domain/txn"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type Patch struct {
	Complaint     *string
	SpareParts    *[]LineInput
	ServiceCharge *decimal.Decimal
}

// Update edits a pending job card under the same row lock Issue takes.
// Stock is never adjusted here.
type Update struct {
	tx     txn.Manager
	jobs   domain.Repository
	parts  inventory.Repository
	audit  *audit.Dispatcher
	strict bool
}

func NewUpdate(
	tx txn.Manager,
	jobs domain.Repository,
	parts inventory.Repository,
	audit *audit.Dispatcher,
	strict bool,
) *Update {
	return &Update{tx: tx, jobs: jobs, parts: parts, audit: audit, strict: strict}
}

func (uc *Update) Execute(
	ctx context.Context,
	garageID, userID, id string,
	patch Patch,
) (*models.JobCard, error) {

	var jc *models.JobCard

	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		jc, err = uc.jobs.GetJobCardForUpdate(ctx, garageID, id)
		if err != nil {
			return err
		}

		if err := domain.CanEdit(domain.Status(jc.Status)); err != nil {
			return err
		}

		if patch.Complaint != nil {
			complaint := strings.TrimSpace(*patch.Complaint)
			if complaint == "" {
				return httperr.ErrBusiness("invalid_request")
			}
			jc.Complaint = complaint
		}

		if patch.SpareParts != nil {
			lines, err := resolveLines(ctx, uc.parts, garageID, *patch.SpareParts, uc.strict)
			if err != nil {
				return err
			}
			jc.SpareParts = snapshotOf(lines)
		}

		charge := jc.ServiceCharge
		if patch.ServiceCharge != nil {
			charge = *patch.ServiceCharge
		}
		if err := domain.Reprice(jc, charge); err != nil {
			return err
		}

		return uc.jobs.UpdateJobCardDetails(ctx, jc)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: garageID,
		UserID:   &userID,
		Action:   "job_card_updated",
		Entity:   "job_card",
		EntityID: &jc.ID,
	})

	return jc, nil
}
