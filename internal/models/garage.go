package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Garage is the tenant root. Every other operational row carries its id.
type Garage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	OwnerName string    `gorm:"size:120;not null" json:"owner_name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:120;not null" json:"email"`
	Logo      *string   `gorm:"size:500" json:"logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Garage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
