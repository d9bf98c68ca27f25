package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
)

const (
	ContextIdentity = "identity"
	ContextGarageID = "garageID"
)

// Authenticator resolves an Authorization header to the caller.
type Authenticator interface {
	Execute(ctx context.Context, header string) (account.Identity, error)
}

func AuthMiddleware(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := authn.Execute(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// IdentityFrom returns the identity set by AuthMiddleware.
func IdentityFrom(c *gin.Context) account.Identity {
	return c.MustGet(ContextIdentity).(account.Identity)
}

// GarageIDFrom returns the garage checked by RequireGarageAccess.
func GarageIDFrom(c *gin.Context) string {
	return c.GetString(ContextGarageID)
}
