package account

import (
	"context"

	"github.com/BruksfildServices01/garage-manager/internal/auth"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/dto"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type Login struct {
	repo domain.Repository
	auth *auth.Service
}

func NewLogin(repo domain.Repository, authService *auth.Service) *Login {
	return &Login{repo: repo, auth: authService}
}

// Execute answers invalid_credentials for both an unknown email and a
// wrong password.
func (uc *Login) Execute(ctx context.Context, email, password string) (*dto.AuthResult, error) {
	user, err := uc.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if httperr.IsBusiness(err, "unknown_identity") {
			return nil, httperr.ErrUnauthenticated("invalid_credentials")
		}
		return nil, err
	}

	if !uc.auth.CheckPassword(password, user.PasswordHash) {
		return nil, httperr.ErrUnauthenticated("invalid_credentials")
	}

	garage, err := garageOf(ctx, uc.repo, user)
	if err != nil {
		return nil, err
	}

	token, err := uc.auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResult{User: user, Garage: garage, Token: token}, nil
}

func garageOf(ctx context.Context, repo domain.Repository, user *models.User) (*models.Garage, error) {
	if user.GarageID == nil {
		return nil, nil
	}
	return repo.GetGarage(ctx, *user.GarageID)
}
