package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/garage-manager/internal/domain/customer"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// FindOrCreateCustomer inserts with ON CONFLICT DO NOTHING against
// idx_customer_identity and then reads the row back, so two concurrent
// requests for the same key both end up with the winner's row.
func (r *CustomerGormRepository) FindOrCreateCustomer(
	ctx context.Context,
	c *models.Customer,
) (*models.Customer, error) {

	db := conn(ctx, r.db)

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "garage_id"},
			{Name: "phone"},
			{Name: "bike_number"},
		},
		DoNothing: true,
	}).Create(c).Error; err != nil {
		return nil, err
	}

	var found models.Customer
	if err := db.
		Where("garage_id = ? AND phone = ? AND bike_number = ?", c.GarageID, c.Phone, c.BikeNumber).
		First(&found).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *CustomerGormRepository) ListCustomers(
	ctx context.Context,
	garageID, query string,
) ([]models.Customer, error) {

	q := conn(ctx, r.db).Where("garage_id = ?", garageID)

	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(bike_number) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerGormRepository) GetCustomer(
	ctx context.Context,
	garageID, id string,
) (*models.Customer, error) {

	var c models.Customer
	if err := conn(ctx, r.db).
		Where("id = ? AND garage_id = ?", id, garageID).
		First(&c).Error; err != nil {
		return nil, notFound(err, "customer_not_found")
	}
	return &c, nil
}

func (r *CustomerGormRepository) RecordCompletedJob(
	ctx context.Context,
	garageID, id string,
	amount decimal.Decimal,
	visit time.Time,
) (*models.Customer, error) {

	db := conn(ctx, r.db)

	res := db.Model(&models.Customer{}).
		Where("id = ? AND garage_id = ?", id, garageID).
		UpdateColumns(map[string]any{
			"total_jobs":  gorm.Expr("total_jobs + 1"),
			"total_spent": gorm.Expr("total_spent + ?", amount),
			"last_visit":  visit,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrNotFound("customer_not_found")
	}

	var c models.Customer
	if err := db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerGormRepository) ListCustomerInvoices(
	ctx context.Context,
	garageID, customerID string,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := conn(ctx, r.db).
		Where("garage_id = ? AND customer_id = ?", garageID, customerID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Compile-time check
var _ customer.Repository = (*CustomerGormRepository)(nil)
