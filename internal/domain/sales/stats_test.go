package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewStats(t *testing.T) {
	s := NewStats(Totals{
		Count:         2,
		PartsTotal:    decimal.NewFromInt(130),
		ServiceCharge: decimal.NewFromInt(120),
	})

	assert.Equal(t, int64(2), s.TotalInvoices)
	assert.True(t, s.TotalPartsTotal.Equal(decimal.NewFromInt(130)))
	assert.True(t, s.TotalServiceCharges.Equal(decimal.NewFromInt(120)))
	assert.True(t, s.TotalProfit.Equal(decimal.NewFromInt(-10)))
}

func TestNewStats_Empty(t *testing.T) {
	s := NewStats(Totals{})
	assert.Equal(t, int64(0), s.TotalInvoices)
	assert.True(t, s.TotalProfit.IsZero())
}
