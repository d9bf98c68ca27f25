package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestNewPart_Defaults(t *testing.T) {
	p, err := NewPart("g-1", Patch{
		Name:  ptr("  Brake pad "),
		Price: ptr(decimal.NewFromInt(250)),
	})
	require.NoError(t, err)

	assert.Equal(t, "g-1", p.GarageID)
	assert.Equal(t, "Brake pad", p.Name)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, 2, p.LowStockThreshold)
	assert.Nil(t, p.Barcode)
	assert.True(t, p.LowStock())
}

func TestNewPart_RequiresNameAndPrice(t *testing.T) {
	_, err := NewPart("g-1", Patch{Name: ptr("Chain")})
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))
}

func TestPatch_Apply(t *testing.T) {
	p := &models.SparePart{
		Name:              "Chain",
		PartNumber:        "CH-1",
		Price:             decimal.NewFromInt(100),
		Quantity:          5,
		LowStockThreshold: 2,
		Barcode:           ptr("111"),
	}

	err := Patch{Price: ptr(decimal.NewFromInt(120)), Barcode: ptr("  ")}.Apply(p)
	require.NoError(t, err)

	assert.Equal(t, "Chain", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 5, p.Quantity)
	assert.Nil(t, p.Barcode)
	assert.False(t, p.LowStock())
}

func TestPatch_Apply_RejectsNegatives(t *testing.T) {
	p := &models.SparePart{Quantity: 3}

	assert.True(t, httperr.IsBusiness(Patch{Quantity: ptr(-1)}.Apply(p), "invalid_quantity"))
	assert.True(t, httperr.IsBusiness(Patch{Price: ptr(decimal.NewFromInt(-5))}.Apply(p), "invalid_price"))
	assert.True(t, httperr.IsBusiness(Patch{LowStockThreshold: ptr(-2)}.Apply(p), "invalid_low_stock_threshold"))
	assert.Equal(t, 3, p.Quantity)
}
