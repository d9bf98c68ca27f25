package invoice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/infra/memory"
	"github.com/BruksfildServices01/garage-manager/internal/models"
	jobcarduc "github.com/BruksfildServices01/garage-manager/internal/usecase/jobcard"
)

const garageID = "g-1"

type env struct {
	store *memory.Store
	audit *audit.Dispatcher
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.New()
	d := audit.NewDispatcher(audit.New(store))
	t.Cleanup(d.Close)
	return &env{store: store, audit: d}
}

func (e *env) issue() *Issue {
	return NewIssue(e.store, e.store, e.store, e.store, e.audit)
}

// jobCard creates a pending card worth 150 in parts plus 200 service.
func (e *env) jobCard(t *testing.T) *models.JobCard {
	t.Helper()
	ctx := context.Background()

	pad := &models.SparePart{GarageID: garageID, Name: "Brake pad", Price: decimal.NewFromInt(75), Quantity: 10, LowStockThreshold: 2}
	require.NoError(t, e.store.CreatePart(ctx, pad))

	jc, err := jobcarduc.NewCreate(e.store, e.store, e.store, e.store, e.audit, false).Execute(ctx, jobcarduc.CreateInput{
		GarageID:      garageID,
		UserID:        "u-1",
		CustomerName:  "Asha",
		Phone:         "9876543210",
		BikeNumber:    "KA01AB1234",
		Complaint:     "Brake noise",
		SpareParts:    []jobcarduc.LineInput{{PartID: pad.ID, Quantity: 2}},
		ServiceCharge: decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	return jc
}

func TestIssue_CompletesJobAndUpdatesCustomer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	jc := e.jobCard(t)

	inv, err := e.issue().Execute(ctx, IssueInput{GarageID: garageID, UserID: "u-1", JobCardID: jc.ID})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, "INV-"))
	assert.True(t, inv.PartsTotal.Equal(decimal.NewFromInt(150)))
	assert.True(t, inv.ServiceCharge.Equal(decimal.NewFromInt(200)))
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(350)))

	done, err := e.store.GetJobCard(ctx, garageID, jc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(jobcard.StatusCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)

	c, err := e.store.GetCustomer(ctx, garageID, jc.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalJobs)
	assert.True(t, c.TotalSpent.Equal(decimal.NewFromInt(350)))
	require.NotNil(t, c.LastVisit)
	assert.Equal(t, inv.CreatedAt, *c.LastVisit)

	history, err := e.store.ListCustomerInvoices(ctx, garageID, jc.CustomerID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, inv.ID, history[0].ID)
}

func TestIssue_SecondIssueConflictsWithoutSideEffects(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	jc := e.jobCard(t)

	_, err := e.issue().Execute(ctx, IssueInput{GarageID: garageID, JobCardID: jc.ID})
	require.NoError(t, err)

	_, err = e.issue().Execute(ctx, IssueInput{GarageID: garageID, JobCardID: jc.ID})
	assert.True(t, httperr.IsBusiness(err, "duplicate_invoice"))
	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindConflict, kind)

	c, err := e.store.GetCustomer(ctx, garageID, jc.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalJobs)
	assert.True(t, c.TotalSpent.Equal(decimal.NewFromInt(350)))

	all, err := NewList(e.store).Execute(ctx, garageID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIssue_ServiceChargeOverride(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	jc := e.jobCard(t)

	charge := decimal.NewFromInt(50)
	inv, err := e.issue().Execute(ctx, IssueInput{
		GarageID:      garageID,
		JobCardID:     jc.ID,
		ServiceCharge: &charge,
		InvoiceNumber: "A-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "A-1", inv.InvoiceNumber)
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(200)))

	done, err := e.store.GetJobCard(ctx, garageID, jc.ID)
	require.NoError(t, err)
	assert.True(t, done.TotalAmount.Equal(inv.TotalAmount))
	assert.True(t, done.ServiceCharge.Equal(charge))
}

func TestIssue_DuplicateNumberRollsBack(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	first := e.jobCard(t)
	second := e.jobCard(t)

	_, err := e.issue().Execute(ctx, IssueInput{GarageID: garageID, JobCardID: first.ID, InvoiceNumber: "A-1"})
	require.NoError(t, err)

	_, err = e.issue().Execute(ctx, IssueInput{GarageID: garageID, JobCardID: second.ID, InvoiceNumber: "A-1"})
	assert.True(t, httperr.IsBusiness(err, "duplicate_invoice_number"))

	jc, err := e.store.GetJobCard(ctx, garageID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, string(jobcard.StatusPending), jc.Status)

	c, err := e.store.GetCustomer(ctx, garageID, second.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalJobs)
}

func TestIssue_GeneratedNumbersInSameMillisecond(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	first := e.jobCard(t)
	second := e.jobCard(t)

	uc := e.issue()
	frozen := time.UnixMilli(1735689600123)
	uc.now = func() time.Time { return frozen }

	a, err := uc.Execute(ctx, IssueInput{GarageID: garageID, JobCardID: first.ID})
	require.NoError(t, err)
	b, err := uc.Execute(ctx, IssueInput{GarageID: garageID, JobCardID: second.ID})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.InvoiceNumber, "INV-1735689600123-"))
	assert.True(t, strings.HasPrefix(b.InvoiceNumber, "INV-1735689600123-"))
	assert.NotEqual(t, a.InvoiceNumber, b.InvoiceNumber)
}

func TestIssue_CrossTenant(t *testing.T) {
	e := newEnv(t)
	jc := e.jobCard(t)

	_, err := e.issue().Execute(context.Background(), IssueInput{GarageID: "g-2", JobCardID: jc.ID})
	assert.True(t, httperr.IsBusiness(err, "job_card_not_found"))
}

func TestUpdateDelivery(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	jc := e.jobCard(t)

	inv, err := e.issue().Execute(ctx, IssueInput{GarageID: garageID, JobCardID: jc.ID})
	require.NoError(t, err)

	sent := true
	url := "https://cdn.test/inv.pdf"
	upd, err := NewUpdateDelivery(e.store, e.audit).Execute(ctx, garageID, "u-1", inv.ID, DeliveryPatch{
		PDFURL:       &url,
		WhatsAppSent: &sent,
	})
	require.NoError(t, err)
	assert.True(t, upd.WhatsAppSent)
	assert.Equal(t, url, *upd.PDFURL)
	assert.True(t, upd.TotalAmount.Equal(inv.TotalAmount))

	_, err = NewUpdateDelivery(e.store, e.audit).Execute(ctx, "g-2", "u-1", inv.ID, DeliveryPatch{WhatsAppSent: &sent})
	assert.True(t, httperr.IsBusiness(err, "invoice_not_found"))
}

type fakeUploader struct{ key string }

func (u *fakeUploader) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	u.key = key
	return "https://cdn.test/" + key, nil
}

func TestAttachPDF(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	jc := e.jobCard(t)

	inv, err := e.issue().Execute(ctx, IssueInput{GarageID: garageID, JobCardID: jc.ID, InvoiceNumber: "A-7"})
	require.NoError(t, err)

	up := &fakeUploader{}
	uc := NewAttachPDF(e.store, up, e.audit)

	_, err = uc.Execute(ctx, garageID, "u-1", inv.ID, []byte("hello"))
	assert.True(t, httperr.IsBusiness(err, "invalid_pdf"))

	upd, err := uc.Execute(ctx, garageID, "u-1", inv.ID, []byte("%PDF-1.4\n1 0 obj"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.key, "garages/g-1/invoices/A-7-"))
	assert.Equal(t, "https://cdn.test/"+up.key, *upd.PDFURL)
}
