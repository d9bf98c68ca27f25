package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/domain/invoice"
	"github.com/BruksfildServices01/garage-manager/internal/domain/sales"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func (s *Store) CreateInvoice(ctx context.Context, inv *models.Invoice) error {
	defer s.lock(ctx)()

	for _, existing := range s.st.invoices {
		if existing.GarageID != inv.GarageID {
			continue
		}
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return httperr.ErrConflict("duplicate_invoice_number")
		}
		if existing.JobCardID == inv.JobCardID {
			return httperr.ErrConflict("duplicate_invoice")
		}
	}

	now := s.now()
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	inv.CreatedAt, inv.UpdatedAt = now, now
	s.st.invoices[inv.ID] = *inv
	return nil
}

func (s *Store) GetInvoice(ctx context.Context, garageID, id string) (*models.Invoice, error) {
	defer s.lock(ctx)()

	inv, ok := s.st.invoices[id]
	if !ok || inv.GarageID != garageID {
		return nil, httperr.ErrNotFound("invoice_not_found")
	}
	return &inv, nil
}

func (s *Store) InvoiceExistsForJobCard(ctx context.Context, garageID, jobCardID string) (bool, error) {
	defer s.lock(ctx)()

	for _, inv := range s.st.invoices {
		if inv.GarageID == garageID && inv.JobCardID == jobCardID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListInvoices(ctx context.Context, garageID string) ([]models.Invoice, error) {
	defer s.lock(ctx)()

	return s.invoicesWhere(func(inv models.Invoice) bool { return inv.GarageID == garageID }), nil
}

func (s *Store) UpdateInvoiceDelivery(ctx context.Context, inv *models.Invoice) error {
	defer s.lock(ctx)()

	current, ok := s.st.invoices[inv.ID]
	if !ok || current.GarageID != inv.GarageID {
		return httperr.ErrNotFound("invoice_not_found")
	}

	current.PDFURL = inv.PDFURL
	current.WhatsAppSent = inv.WhatsAppSent
	current.UpdatedAt = s.now()
	s.st.invoices[inv.ID] = current

	*inv = current
	return nil
}

func (s *Store) InvoiceTotals(ctx context.Context, garageID string) (sales.Totals, error) {
	defer s.lock(ctx)()

	t := sales.Totals{PartsTotal: decimal.Zero, ServiceCharge: decimal.Zero}
	for _, inv := range s.st.invoices {
		if inv.GarageID != garageID {
			continue
		}
		t.Count++
		t.PartsTotal = t.PartsTotal.Add(inv.PartsTotal)
		t.ServiceCharge = t.ServiceCharge.Add(inv.ServiceCharge)
	}
	return t, nil
}

// invoicesWhere returns matches newest first. Callers hold the mutex.
func (s *Store) invoicesWhere(keep func(models.Invoice) bool) []models.Invoice {
	out := []models.Invoice{}
	for _, inv := range s.st.invoices {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

var (
	_ invoice.Repository = (*Store)(nil)
	_ sales.Repository   = (*Store)(nil)
)
