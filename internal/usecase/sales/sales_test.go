package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/infra/memory"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

const garageID = "g-1"

var (
	admin = account.Identity{UserID: "a", Role: models.RoleGarageAdmin}
	staff = account.Identity{UserID: "s", Role: models.RoleMechanicStaff}
)

func seedInvoice(t *testing.T, s *memory.Store, garage, number string, parts, service int64) {
	t.Helper()
	require.NoError(t, s.CreateInvoice(context.Background(), &models.Invoice{
		GarageID:      garage,
		JobCardID:     "jc-" + number,
		CustomerID:    "c-1",
		InvoiceNumber: number,
		PartsTotal:    decimal.NewFromInt(parts),
		ServiceCharge: decimal.NewFromInt(service),
		TotalAmount:   decimal.NewFromInt(parts + service),
	}))
}

func TestGetStats(t *testing.T) {
	s := memory.New()
	seedInvoice(t, s, garageID, "1", 100, 50)
	seedInvoice(t, s, garageID, "2", 30, 70)
	seedInvoice(t, s, "g-2", "1", 999, 999)

	stats, err := NewGetStats(s).Execute(context.Background(), admin, garageID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalInvoices)
	assert.True(t, stats.TotalPartsTotal.Equal(decimal.NewFromInt(130)))
	assert.True(t, stats.TotalServiceCharges.Equal(decimal.NewFromInt(120)))
	assert.True(t, stats.TotalProfit.Equal(decimal.NewFromInt(-10)))

	_, err = NewGetStats(s).Execute(context.Background(), staff, garageID)
	assert.True(t, httperr.IsBusiness(err, "insufficient_permissions"))
}

func TestGetStats_Empty(t *testing.T) {
	stats, err := NewGetStats(memory.New()).Execute(context.Background(), admin, garageID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalInvoices)
	assert.True(t, stats.TotalProfit.IsZero())
}

func TestDashboard(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	require.NoError(t, s.CreatePart(ctx, &models.SparePart{GarageID: garageID, Name: "Plug", Price: decimal.NewFromInt(5), Quantity: 1, LowStockThreshold: 2}))
	require.NoError(t, s.CreatePart(ctx, &models.SparePart{GarageID: garageID, Name: "Chain", Price: decimal.NewFromInt(5), Quantity: 10, LowStockThreshold: 2}))
	for _, n := range []string{"1", "2", "3", "4", "5", "6"} {
		seedInvoice(t, s, garageID, n, 10, 20)
	}

	uc := NewDashboard(s, s, s, s)

	d, err := uc.Execute(ctx, admin, garageID)
	require.NoError(t, err)
	assert.Len(t, d.LowStockParts, 1)
	assert.Len(t, d.RecentInvoices, 5)
	assert.Equal(t, "6", d.RecentInvoices[0].InvoiceNumber)
	assert.Empty(t, d.PendingJobCards)
	require.NotNil(t, d.Sales)
	assert.Equal(t, int64(6), d.Sales.TotalInvoices)

	d, err = uc.Execute(ctx, staff, garageID)
	require.NoError(t, err)
	assert.Nil(t, d.Sales)
}
