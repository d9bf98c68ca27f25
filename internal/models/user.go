package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleGarageAdmin   Role = "garage_admin"
	RoleMechanicStaff Role = "mechanic_staff"
	RoleSuperAdmin    Role = "super_admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGarageAdmin, RoleMechanicStaff, RoleSuperAdmin:
		return true
	}
	return false
}

type User struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	GarageID *string `gorm:"type:uuid;index" json:"garage_id"`
	Garage   *Garage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
