package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/garage-manager/internal/auth"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
)

type Authenticate struct {
	repo domain.Repository
	auth *auth.Service
}

func NewAuthenticate(repo domain.Repository, authService *auth.Service) *Authenticate {
	return &Authenticate{repo: repo, auth: authService}
}

// Execute resolves an Authorization header to the caller. Role and
// garage come from the store, not from the token.
func (uc *Authenticate) Execute(ctx context.Context, header string) (domain.Identity, error) {
	if strings.TrimSpace(header) == "" {
		return domain.Identity{}, httperr.ErrUnauthenticated("missing_token")
	}

	token, err := auth.ExtractTokenFromHeader(header)
	if err != nil {
		return domain.Identity{}, httperr.ErrUnauthenticated("invalid_token")
	}

	claims, err := uc.auth.ValidateToken(token)
	if err != nil {
		return domain.Identity{}, httperr.ErrUnauthenticated("invalid_token")
	}

	user, err := uc.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if httperr.IsBusiness(err, "unknown_identity") {
			return domain.Identity{}, httperr.ErrUnauthenticated("unknown_identity")
		}
		return domain.Identity{}, err
	}

	return domain.IdentityOf(user), nil
}
