package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobCardPart is the point-in-time copy of a spare part taken when the
// job card is written. It never follows later edits of the part.
type JobCardPart struct {
	PartID   string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (p JobCardPart) LineTotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

type JobCard struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	GarageID string `gorm:"type:uuid;not null;index:idx_job_cards_garage_status,priority:1" json:"garage_id"`
	Garage   Garage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomerID string   `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	BikeNumber   string `gorm:"size:30;not null" json:"bike_number"`
	Complaint    string `gorm:"type:text;not null" json:"complaint"`

	Status     string                            `gorm:"size:20;not null;default:'pending';index:idx_job_cards_garage_status,priority:2" json:"status"`
	SpareParts datatypes.JSONSlice[JobCardPart] `gorm:"type:jsonb" json:"spare_parts"`

	ServiceCharge decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"service_charge"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PartsTotal sums the snapshot lines.
func (j JobCard) PartsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range j.SpareParts {
		total = total.Add(p.LineTotal())
	}
	return total
}

func (j *JobCard) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
