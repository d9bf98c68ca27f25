package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Invoice struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	GarageID string `gorm:"type:uuid;not null;uniqueIndex:idx_invoice_number,priority:1" json:"garage_id"`
	Garage   Garage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	JobCardID string  `gorm:"type:uuid;not null;uniqueIndex:idx_invoice_job_card" json:"job_card_id"`
	JobCard   JobCard `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CustomerID string   `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	InvoiceNumber string  `gorm:"size:60;not null;uniqueIndex:idx_invoice_number,priority:2" json:"invoice_number"`
	PDFURL        *string `gorm:"column:pdf_url;size:500" json:"pdf_url"`
	WhatsAppSent  bool    `gorm:"column:whatsapp_sent;not null;default:false" json:"whatsapp_sent"`

	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PartsTotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"parts_total"`
	ServiceCharge decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"service_charge"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
