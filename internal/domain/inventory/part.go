package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// Patch is a partial update of a spare part. Nil fields stay unchanged.
type Patch struct {
	Name              *string
	PartNumber        *string
	Price             *decimal.Decimal
	Quantity          *int
	LowStockThreshold *int
	Barcode           *string
}

// Apply validates the patch and writes it onto p. Manual edits may not
// set negative stock; only job card debits can drive quantity below zero.
func (pt Patch) Apply(p *models.SparePart) error {
	if pt.Name != nil {
		name := strings.TrimSpace(*pt.Name)
		if name == "" {
			return httperr.ErrBusiness("invalid_name")
		}
		p.Name = name
	}
	if pt.PartNumber != nil {
		p.PartNumber = strings.TrimSpace(*pt.PartNumber)
	}
	if pt.Price != nil {
		if pt.Price.IsNegative() {
			return httperr.ErrBusiness("invalid_price")
		}
		p.Price = *pt.Price
	}
	if pt.Quantity != nil {
		if *pt.Quantity < 0 {
			return httperr.ErrBusiness("invalid_quantity")
		}
		p.Quantity = *pt.Quantity
	}
	if pt.LowStockThreshold != nil {
		if *pt.LowStockThreshold < 0 {
			return httperr.ErrBusiness("invalid_low_stock_threshold")
		}
		p.LowStockThreshold = *pt.LowStockThreshold
	}
	if pt.Barcode != nil {
		p.Barcode = NormalizeBarcode(*pt.Barcode)
	}
	return nil
}

// NormalizeBarcode trims the scanned value; blank means no barcode.
func NormalizeBarcode(code string) *string {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	return &code
}

// NewPart builds a part from creation fields, defaulting quantity to 0
// and the low stock threshold to 2.
func NewPart(garageID string, fields Patch) (*models.SparePart, error) {
	if fields.Name == nil || fields.Price == nil {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	p := &models.SparePart{
		GarageID:          garageID,
		LowStockThreshold: models.DefaultLowStockThreshold,
	}
	if err := fields.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}
