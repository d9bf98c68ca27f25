package invoice

import (
	"context"

	domain "github.com/BruksfildServices01/garage-manager/internal/domain/invoice"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type List struct {
	invoices domain.Repository
}

func NewList(invoices domain.Repository) *List {
	return &List{invoices: invoices}
}

func (uc *List) Execute(ctx context.Context, garageID string) ([]models.Invoice, error) {
	return uc.invoices.ListInvoices(ctx, garageID)
}

type Get struct {
	invoices domain.Repository
}

func NewGet(invoices domain.Repository) *Get {
	return &Get{invoices: invoices}
}

func (uc *Get) Execute(ctx context.Context, garageID, id string) (*models.Invoice, error) {
	return uc.invoices.GetInvoice(ctx, garageID, id)
}
