package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/garage-manager/internal/auth"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/dto"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
	"github.com/BruksfildServices01/garage-manager/internal/validation"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Email          string `validate:"required,email"`
	Password       string `validate:"required,min=6"`
	Name           string `validate:"required"`
	ActivationCode string `validate:"required"`

	// Garage profile, required for garage admins.
	GarageName  string
	OwnerName   string
	GaragePhone string
	GarageEmail string
}

// DomainChecker reports whether an email domain can receive mail.
type DomainChecker interface {
	Valid(ctx context.Context, email string) bool
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo    domain.Repository
	auth    *auth.Service
	codes   map[string]models.Role
	domains DomainChecker
}

// NewRegister wires registration. domains may be nil to skip the email
// domain lookup.
func NewRegister(
	repo domain.Repository,
	authService *auth.Service,
	codes map[string]models.Role,
	domains DomainChecker,
) *Register {
	return &Register{
		repo:    repo,
		auth:    authService,
		codes:   codes,
		domains: domains,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*dto.AuthResult, error) {
	in.Email = NormalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	role, ok := uc.codes[strings.TrimSpace(in.ActivationCode)]
	if !ok {
		return nil, httperr.ErrBusiness("invalid_activation_code")
	}

	if uc.domains != nil && !uc.domains.Valid(ctx, in.Email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	if _, err := uc.repo.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, httperr.ErrConflict("duplicate_identity")
	} else if !httperr.IsBusiness(err, "unknown_identity") {
		return nil, err
	}

	hash, err := uc.auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}

	var garage *models.Garage

	switch role {
	case models.RoleGarageAdmin:
		garage, err = newGarage(in)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.CreateGarageWithAdmin(ctx, garage, user); err != nil {
			return nil, err
		}
	default:
		if err := uc.repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := uc.auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResult{User: user, Garage: garage, Token: token}, nil
}

func newGarage(in RegisterInput) (*models.Garage, error) {
	g := &models.Garage{
		Name:      strings.TrimSpace(in.GarageName),
		OwnerName: strings.TrimSpace(in.OwnerName),
		Phone:     strings.TrimSpace(in.GaragePhone),
		Email:     NormalizeEmail(in.GarageEmail),
	}
	if g.Name == "" {
		return nil, httperr.ErrBusiness("invalid_garage_profile")
	}
	if g.OwnerName == "" {
		g.OwnerName = in.Name
	}
	if g.Email == "" {
		g.Email = in.Email
	}
	return g, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
