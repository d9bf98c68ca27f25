package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// RequireGarageAccess checks the :garageId path segment against the
// caller on every request.
func RequireGarageAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		garageID := c.Param("garageId")

		if err := account.AuthorizeGarageAccess(IdentityFrom(c), garageID); err != nil {
			httperr.Abort(c, err)
			return
		}

		c.Set(ContextGarageID, garageID)
		c.Next()
	}
}

func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := account.AuthorizeRole(IdentityFrom(c), roles...); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Next()
	}
}

// RequireAdmin passes garage admins and super admins.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleGarageAdmin, models.RoleSuperAdmin)
}
