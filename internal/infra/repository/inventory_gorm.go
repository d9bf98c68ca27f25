package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

func (r *InventoryGormRepository) ListParts(
	ctx context.Context,
	garageID string,
) ([]models.SparePart, error) {

	var parts []models.SparePart
	if err := conn(ctx, r.db).
		Where("garage_id = ?", garageID).
		Order("name ASC").
		Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *InventoryGormRepository) ListLowStockParts(
	ctx context.Context,
	garageID string,
) ([]models.SparePart, error) {

	var parts []models.SparePart
	if err := conn(ctx, r.db).
		Where("garage_id = ? AND quantity <= low_stock_threshold", garageID).
		Order("quantity ASC, name ASC").
		Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *InventoryGormRepository) GetPart(
	ctx context.Context,
	garageID, id string,
) (*models.SparePart, error) {

	var p models.SparePart
	if err := conn(ctx, r.db).
		Where("id = ? AND garage_id = ?", id, garageID).
		First(&p).Error; err != nil {
		return nil, notFound(err, "spare_part_not_found")
	}
	return &p, nil
}

func (r *InventoryGormRepository) GetPartByBarcode(
	ctx context.Context,
	garageID, barcode string,
) (*models.SparePart, error) {

	var p models.SparePart
	if err := conn(ctx, r.db).
		Where("garage_id = ? AND barcode = ?", garageID, barcode).
		First(&p).Error; err != nil {
		return nil, notFound(err, "spare_part_not_found")
	}
	return &p, nil
}

func (r *InventoryGormRepository) CreatePart(
	ctx context.Context,
	part *models.SparePart,
) error {
	return duplicateBarcode(conn(ctx, r.db).Create(part).Error)
}

// UpdatePart writes the editable columns. Quantity is included because
// admins may correct stock by hand.
func (r *InventoryGormRepository) UpdatePart(
	ctx context.Context,
	part *models.SparePart,
) error {

	res := conn(ctx, r.db).
		Model(&models.SparePart{}).
		Where("id = ? AND garage_id = ?", part.ID, part.GarageID).
		Updates(map[string]any{
			"name":                part.Name,
			"part_number":         part.PartNumber,
			"price":               part.Price,
			"quantity":            part.Quantity,
			"low_stock_threshold": part.LowStockThreshold,
			"barcode":             part.Barcode,
		})
	if err := duplicateBarcode(res.Error); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("spare_part_not_found")
	}
	return nil
}

func (r *InventoryGormRepository) AdjustPartQuantity(
	ctx context.Context,
	garageID, id string,
	delta int,
) (*models.SparePart, error) {

	db := conn(ctx, r.db)

	res := db.Model(&models.SparePart{}).
		Where("id = ? AND garage_id = ?", id, garageID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrNotFound("spare_part_not_found")
	}

	var p models.SparePart
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *InventoryGormRepository) DeletePart(
	ctx context.Context,
	garageID, id string,
) error {
	return conn(ctx, r.db).
		Where("id = ? AND garage_id = ?", id, garageID).
		Delete(&models.SparePart{}).Error
}

func duplicateBarcode(err error) error {
	if httperr.IsUniqueViolation(err, "barcode") {
		return httperr.ErrConflict("duplicate_barcode")
	}
	return err
}

// Compile-time check
var _ inventory.Repository = (*InventoryGormRepository)(nil)
