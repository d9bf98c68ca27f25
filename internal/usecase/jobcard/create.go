package jobcard

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/domain/customer"
	"github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/domain/txn"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
	customeruc "github.com/BruksfildServices01/garage-manager/internal/usecase/customer"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	GarageID string
	UserID   string

	CustomerName string
	Phone        string
	BikeNumber   string

	Complaint     string
	SpareParts    []LineInput
	ServiceCharge decimal.Decimal
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	tx        txn.Manager
	jobs      domain.Repository
	parts     inventory.Repository
	customers *customeruc.FindOrCreate
	audit     *audit.Dispatcher
	strict    bool
}

// NewCreate wires job card creation. strict rejects lines whose part id
// does not resolve; otherwise those lines are kept without a debit.
func NewCreate(
	tx txn.Manager,
	jobs domain.Repository,
	parts inventory.Repository,
	customers customer.Repository,
	audit *audit.Dispatcher,
	strict bool,
) *Create {
	return &Create{
		tx:        tx,
		jobs:      jobs,
		parts:     parts,
		customers: customeruc.NewFindOrCreate(customers),
		audit:     audit,
		strict:    strict,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.JobCard, error) {
	in.Complaint = strings.TrimSpace(in.Complaint)
	if in.Complaint == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	var (
		jc      *models.JobCard
		skipped int
	)

	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {

		// --------------------------------------------------
		// Customer (find or create on phone + bike number)
		// --------------------------------------------------
		c, err := uc.customers.Execute(ctx, customeruc.FindOrCreateInput{
			GarageID:   in.GarageID,
			Name:       in.CustomerName,
			Phone:      in.Phone,
			BikeNumber: in.BikeNumber,
		})
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// Snapshot lines and total
		// --------------------------------------------------
		lines, err := resolveLines(ctx, uc.parts, in.GarageID, in.SpareParts, uc.strict)
		if err != nil {
			return err
		}

		jc = &models.JobCard{
			GarageID:     in.GarageID,
			CustomerID:   c.ID,
			CustomerName: c.Name,
			Phone:        c.Phone,
			BikeNumber:   c.BikeNumber,
			Complaint:    in.Complaint,
			Status:       string(domain.InitialStatus()),
			SpareParts:   snapshotOf(lines),
		}
		if err := domain.Reprice(jc, in.ServiceCharge); err != nil {
			return err
		}

		if err := uc.jobs.CreateJobCard(ctx, jc); err != nil {
			return err
		}

		// --------------------------------------------------
		// Debit stock, one adjustment per resolved line
		// --------------------------------------------------
		for _, l := range lines {
			if !l.live {
				skipped++
				continue
			}
			if _, err := uc.parts.AdjustPartQuantity(ctx, in.GarageID, l.PartID, -l.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: in.GarageID,
		UserID:   &in.UserID,
		Action:   "job_card_created",
		Entity:   "job_card",
		EntityID: &jc.ID,
		Metadata: map[string]any{
			"total_amount":  jc.TotalAmount.String(),
			"lines":         len(jc.SpareParts),
			"skipped_lines": skipped,
		},
	})

	return jc, nil
}
