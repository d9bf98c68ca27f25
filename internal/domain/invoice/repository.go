package invoice

import (
	"context"

	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type Repository interface {
	// CreateInvoice fails with duplicate_invoice when the job card is
	// already billed and duplicate_invoice_number when the number is
	// taken in the garage.
	CreateInvoice(ctx context.Context, inv *models.Invoice) error
	GetInvoice(ctx context.Context, garageID, id string) (*models.Invoice, error)
	InvoiceExistsForJobCard(ctx context.Context, garageID, jobCardID string) (bool, error)
	ListInvoices(ctx context.Context, garageID string) ([]models.Invoice, error)

	// UpdateInvoiceDelivery only touches pdf_url and whatsapp_sent.
	UpdateInvoiceDelivery(ctx context.Context, inv *models.Invoice) error
}
