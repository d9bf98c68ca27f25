package customer

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type Repository interface {
	// FindOrCreateCustomer returns the garage's customer keyed by
	// (phone, bike number), inserting c when absent. Concurrent callers
	// with the same key get the same row.
	FindOrCreateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, error)

	ListCustomers(ctx context.Context, garageID, query string) ([]models.Customer, error)
	GetCustomer(ctx context.Context, garageID, id string) (*models.Customer, error)

	// RecordCompletedJob adds one job and amount to the aggregates and
	// moves last_visit, as store-side increments.
	RecordCompletedJob(ctx context.Context, garageID, id string, amount decimal.Decimal, visit time.Time) (*models.Customer, error)

	ListCustomerInvoices(ctx context.Context, garageID, customerID string) ([]models.Invoice, error)
}

// NormalizePhone drops spaces and dashes.
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
}

// NormalizeBikeNumber upper-cases a registration plate and drops spaces.
func NormalizeBikeNumber(bike string) string {
	return strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(bike)))
}
