package account

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func strPtr(s string) *string { return &s }

func TestAuthorizeGarageAccess(t *testing.T) {
	g1, g2 := "garage-1", "garage-2"

	cases := []struct {
		name    string
		id      Identity
		garage  string
		allowed bool
	}{
		{"admin own garage", Identity{Role: models.RoleGarageAdmin, GarageID: &g1}, g1, true},
		{"admin other garage", Identity{Role: models.RoleGarageAdmin, GarageID: &g1}, g2, false},
		{"staff own garage", Identity{Role: models.RoleMechanicStaff, GarageID: &g2}, g2, true},
		{"unbound staff", Identity{Role: models.RoleMechanicStaff}, g1, false},
		{"unbound staff empty path", Identity{Role: models.RoleMechanicStaff}, "", false},
		{"super admin", Identity{Role: models.RoleSuperAdmin}, g2, true},
		{"unknown role", Identity{Role: models.Role("owner"), GarageID: strPtr(g1)}, g1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := AuthorizeGarageAccess(tc.id, tc.garage)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, "access_denied"))
		})
	}
}

func TestAuthorizeRole(t *testing.T) {
	admin := Identity{Role: models.RoleGarageAdmin}
	staff := Identity{Role: models.RoleMechanicStaff}

	assert.NoError(t, AuthorizeRole(admin, models.RoleGarageAdmin, models.RoleSuperAdmin))

	err := AuthorizeRole(staff, models.RoleGarageAdmin)
	kind, ok := httperr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, httperr.KindUnauthorized, kind)
	assert.True(t, httperr.IsBusiness(err, "insufficient_permissions"))
}
