package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GarageID string  `gorm:"type:uuid;index" json:"garage_id"`
	UserID   *string `gorm:"type:uuid" json:"user_id"`
	Action   string  `gorm:"size:50;not null" json:"action"`

	Entity   string  `gorm:"size:50" json:"entity"`
	EntityID *string `gorm:"size:64" json:"entity_id"`
	Metadata string  `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
