package account

import (
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// AuthorizeGarageAccess lets super admins into any garage and everybody
// else only into the garage they are bound to.
func AuthorizeGarageAccess(id Identity, garageID string) error {
	switch id.Role {
	case models.RoleSuperAdmin:
		return nil
	case models.RoleGarageAdmin, models.RoleMechanicStaff:
		if garageID != "" && id.Garage() == garageID {
			return nil
		}
	}
	return httperr.ErrForbidden("access_denied")
}

func AuthorizeRole(id Identity, allowed ...models.Role) error {
	for _, r := range allowed {
		if id.Role == r {
			return nil
		}
	}
	return httperr.ErrForbidden("insufficient_permissions")
}

// AuthorizeAdmin passes garage admins and super admins.
func AuthorizeAdmin(id Identity) error {
	return AuthorizeRole(id, models.RoleGarageAdmin, models.RoleSuperAdmin)
}
