package account

import "github.com/BruksfildServices01/garage-manager/internal/models"

// Identity is the authenticated caller, resolved from the store for the
// current request only.
type Identity struct {
	UserID   string
	Email    string
	Name     string
	Role     models.Role
	GarageID *string
}

func IdentityOf(u *models.User) Identity {
	return Identity{
		UserID:   u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		GarageID: u.GarageID,
	}
}

// Garage returns the bound garage id, or "" when unbound.
func (i Identity) Garage() string {
	if i.GarageID == nil {
		return ""
	}
	return *i.GarageID
}
