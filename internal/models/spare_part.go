package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultLowStockThreshold = 2

type SparePart struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	GarageID string `gorm:"type:uuid;not null;index" json:"garage_id"`
	Garage   Garage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name              string          `gorm:"size:120;not null" json:"name"`
	PartNumber        string          `gorm:"size:60;not null" json:"part_number"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity          int             `gorm:"not null;default:0" json:"quantity"`
	LowStockThreshold int             `gorm:"not null;default:2" json:"low_stock_threshold"`
	Barcode           *string         `gorm:"size:80" json:"barcode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock reports quantity <= threshold.
func (p SparePart) LowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}

func (p *SparePart) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
