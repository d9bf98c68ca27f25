package account

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/garage-manager/internal/auth"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// EnsureSuperAdmin creates the operator account once. Super admins are
// never created through registration.
func EnsureSuperAdmin(
	ctx context.Context,
	repo domain.Repository,
	authService *auth.Service,
	email, password string,
) error {

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	_, err := repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !httperr.IsBusiness(err, "unknown_identity") {
		return err
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		return err
	}

	if err := repo.CreateUser(ctx, &models.User{
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
	}); err != nil {
		return err
	}

	log.WithField("email", email).Info("super admin created")
	return nil
}
