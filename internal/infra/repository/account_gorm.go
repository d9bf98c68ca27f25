package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Garage
// --------------------------------------------------

func (r *AccountGormRepository) CreateGarageWithAdmin(
	ctx context.Context,
	garage *models.Garage,
	admin *models.User,
) error {

	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(garage).Error; err != nil {
			return err
		}

		admin.GarageID = &garage.ID
		if err := tx.Create(admin).Error; err != nil {
			return duplicateUser(err)
		}
		return nil
	})
}

func (r *AccountGormRepository) GetGarage(
	ctx context.Context,
	id string,
) (*models.Garage, error) {

	var g models.Garage
	if err := conn(ctx, r.db).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, notFound(err, "garage_not_found")
	}
	return &g, nil
}

func (r *AccountGormRepository) UpdateGarage(
	ctx context.Context,
	garage *models.Garage,
) error {

	res := conn(ctx, r.db).
		Model(&models.Garage{}).
		Where("id = ?", garage.ID).
		Updates(map[string]any{
			"name":       garage.Name,
			"owner_name": garage.OwnerName,
			"phone":      garage.Phone,
			"email":      garage.Email,
			"logo":       garage.Logo,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("garage_not_found")
	}
	return nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return duplicateUser(conn(ctx, r.db).Create(user).Error)
}

func (r *AccountGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := conn(ctx, r.db).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err, "unknown_identity")
	}
	return &u, nil
}

func (r *AccountGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := conn(ctx, r.db).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err, "unknown_identity")
	}
	return &u, nil
}

func duplicateUser(err error) error {
	if httperr.IsUniqueViolation(err, "email") {
		return httperr.ErrConflict("duplicate_identity")
	}
	return err
}

// Compile-time check
var _ account.Repository = (*AccountGormRepository)(nil)
