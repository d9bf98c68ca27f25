package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/domain/customer"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/invoice"
	"github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/domain/txn"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type IssueInput struct {
	GarageID  string
	UserID    string
	JobCardID string

	// ServiceCharge overrides the job card's charge when set.
	ServiceCharge *decimal.Decimal
	InvoiceNumber string
	PDFURL        *string
	WhatsAppSent  bool
}

// ======================================================
// USE CASE
// ======================================================

// Issue bills a pending job card. The invoice insert, the job card flip
// to completed and the customer aggregate update commit together.
type Issue struct {
	tx        txn.Manager
	invoices  domain.Repository
	jobs      jobcard.Repository
	customers customer.Repository
	audit     *audit.Dispatcher
	now       func() time.Time
}

func NewIssue(
	tx txn.Manager,
	invoices domain.Repository,
	jobs jobcard.Repository,
	customers customer.Repository,
	audit *audit.Dispatcher,
) *Issue {
	return &Issue{
		tx:        tx,
		invoices:  invoices,
		jobs:      jobs,
		customers: customers,
		audit:     audit,
		now:       time.Now,
	}
}

func (uc *Issue) Execute(ctx context.Context, in IssueInput) (*models.Invoice, error) {
	var inv *models.Invoice

	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {

		// --------------------------------------------------
		// Job card, locked until commit
		// --------------------------------------------------
		jc, err := uc.jobs.GetJobCardForUpdate(ctx, in.GarageID, in.JobCardID)
		if err != nil {
			return err
		}

		exists, err := uc.invoices.InvoiceExistsForJobCard(ctx, in.GarageID, jc.ID)
		if err != nil {
			return err
		}
		if exists {
			return httperr.ErrConflict("duplicate_invoice")
		}

		charge := jc.ServiceCharge
		if in.ServiceCharge != nil {
			charge = *in.ServiceCharge
		}

		now := uc.now()
		if err := jobcard.Complete(jc, charge, now); err != nil {
			return err
		}

		// --------------------------------------------------
		// Invoice
		// --------------------------------------------------
		inv = &models.Invoice{
			GarageID:      in.GarageID,
			JobCardID:     jc.ID,
			CustomerID:    jc.CustomerID,
			InvoiceNumber: domain.Number(in.InvoiceNumber, now),
			PDFURL:        in.PDFURL,
			WhatsAppSent:  in.WhatsAppSent,
			TotalAmount:   jc.TotalAmount,
			PartsTotal:    jc.PartsTotal(),
			ServiceCharge: jc.ServiceCharge,
		}
		if err := uc.invoices.CreateInvoice(ctx, inv); err != nil {
			return err
		}

		// --------------------------------------------------
		// Job card -> completed, customer aggregates
		// --------------------------------------------------
		if err := uc.jobs.UpdateJobCard(ctx, jc); err != nil {
			return err
		}

		_, err = uc.customers.RecordCompletedJob(ctx, in.GarageID, jc.CustomerID, inv.TotalAmount, inv.CreatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: in.GarageID,
		UserID:   &in.UserID,
		Action:   "invoice_issued",
		Entity:   "invoice",
		EntityID: &inv.ID,
		Metadata: map[string]any{
			"invoice_number": inv.InvoiceNumber,
			"job_card_id":    inv.JobCardID,
			"total_amount":   inv.TotalAmount.String(),
		},
	})

	return inv, nil
}
