package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer is unique per garage on (phone, bike_number). The aggregate
// columns are only moved by invoice issuance.
type Customer struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	GarageID string `gorm:"type:uuid;not null;uniqueIndex:idx_customer_identity,priority:1" json:"garage_id"`
	Garage   Garage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Phone      string `gorm:"size:20;not null;uniqueIndex:idx_customer_identity,priority:2" json:"phone"`
	BikeNumber string `gorm:"size:30;not null;uniqueIndex:idx_customer_identity,priority:3" json:"bike_number"`

	TotalJobs  int             `gorm:"not null;default:0" json:"total_jobs"`
	TotalSpent decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_spent"`
	LastVisit  *time.Time      `json:"last_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
