package account

import (
	"context"

	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type Repository interface {
	// -------- Garage --------
	// CreateGarageWithAdmin writes both rows or neither and binds the
	// user to the new garage.
	CreateGarageWithAdmin(ctx context.Context, garage *models.Garage, admin *models.User) error
	GetGarage(ctx context.Context, id string) (*models.Garage, error)
	UpdateGarage(ctx context.Context, garage *models.Garage) error

	// -------- User --------
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
