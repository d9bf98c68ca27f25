package sales

import (
	"context"

	"github.com/shopspring/decimal"
)

// Stats are summed over a garage's invoices at query time.
type Stats struct {
	TotalInvoices       int64           `json:"total_invoices"`
	TotalPartsTotal     decimal.Decimal `json:"total_parts_total"`
	TotalServiceCharges decimal.Decimal `json:"total_service_charges"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
}

// Totals is the raw aggregate read from the store.
type Totals struct {
	Count         int64
	PartsTotal    decimal.Decimal
	ServiceCharge decimal.Decimal
}

// NewStats derives profit as service charges minus parts. Parts are
// treated as the cost offsetting service revenue.
func NewStats(t Totals) Stats {
	return Stats{
		TotalInvoices:       t.Count,
		TotalPartsTotal:     t.PartsTotal,
		TotalServiceCharges: t.ServiceCharge,
		TotalProfit:         t.ServiceCharge.Sub(t.PartsTotal),
	}
}

type Repository interface {
	InvoiceTotals(ctx context.Context, garageID string) (Totals, error)
}
