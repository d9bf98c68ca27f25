package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/auth"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/models"
	"github.com/BruksfildServices01/garage-manager/internal/validation"
)

type CreateStaffInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// CreateStaff lets a garage admin open a mechanic account already bound
// to their garage.
type CreateStaff struct {
	repo  domain.Repository
	auth  *auth.Service
	audit *audit.Dispatcher
}

func NewCreateStaff(repo domain.Repository, authService *auth.Service, audit *audit.Dispatcher) *CreateStaff {
	return &CreateStaff{repo: repo, auth: authService, audit: audit}
}

func (uc *CreateStaff) Execute(
	ctx context.Context,
	id domain.Identity,
	garageID string,
	in CreateStaffInput,
) (*models.User, error) {

	if err := authorizeGarageAdmin(id, garageID); err != nil {
		return nil, err
	}

	in.Email = NormalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	hash, err := uc.auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		GarageID:     &garageID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         models.RoleMechanicStaff,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: garageID,
		UserID:   &id.UserID,
		Action:   "staff_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
