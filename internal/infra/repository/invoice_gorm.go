package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-manager/internal/domain/invoice"
	"github.com/BruksfildServices01/garage-manager/internal/domain/sales"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

func (r *InvoiceGormRepository) CreateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {

	err := conn(ctx, r.db).Create(inv).Error
	switch {
	case err == nil:
		return nil
	case httperr.IsUniqueViolation(err, "idx_invoice_number"):
		return httperr.ErrConflict("duplicate_invoice_number")
	case httperr.IsUniqueViolation(err, ""):
		return httperr.ErrConflict("duplicate_invoice")
	}
	return err
}

func (r *InvoiceGormRepository) GetInvoice(
	ctx context.Context,
	garageID, id string,
) (*models.Invoice, error) {

	var inv models.Invoice
	if err := conn(ctx, r.db).
		Where("id = ? AND garage_id = ?", id, garageID).
		First(&inv).Error; err != nil {
		return nil, notFound(err, "invoice_not_found")
	}
	return &inv, nil
}

func (r *InvoiceGormRepository) InvoiceExistsForJobCard(
	ctx context.Context,
	garageID, jobCardID string,
) (bool, error) {

	var count int64
	if err := conn(ctx, r.db).
		Model(&models.Invoice{}).
		Where("garage_id = ? AND job_card_id = ?", garageID, jobCardID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *InvoiceGormRepository) ListInvoices(
	ctx context.Context,
	garageID string,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := conn(ctx, r.db).
		Where("garage_id = ?", garageID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceGormRepository) UpdateInvoiceDelivery(
	ctx context.Context,
	inv *models.Invoice,
) error {

	res := conn(ctx, r.db).
		Model(&models.Invoice{}).
		Where("id = ? AND garage_id = ?", inv.ID, inv.GarageID).
		Updates(map[string]any{
			"pdf_url":       inv.PDFURL,
			"whatsapp_sent": inv.WhatsAppSent,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("invoice_not_found")
	}
	return nil
}

// --------------------------------------------------
// Sales
// --------------------------------------------------

type invoiceTotalsRow struct {
	Count         int64
	PartsTotal    decimal.Decimal
	ServiceCharge decimal.Decimal
}

// InvoiceTotals aggregates in SQL so the numbers always reflect the
// invoices at query time.
func (r *InvoiceGormRepository) InvoiceTotals(
	ctx context.Context,
	garageID string,
) (sales.Totals, error) {

	var row invoiceTotalsRow
	if err := conn(ctx, r.db).
		Model(&models.Invoice{}).
		Select(
			"COUNT(*) AS count, " +
				"COALESCE(SUM(parts_total), 0) AS parts_total, " +
				"COALESCE(SUM(service_charge), 0) AS service_charge",
		).
		Where("garage_id = ?", garageID).
		Scan(&row).Error; err != nil {
		return sales.Totals{}, err
	}

	return sales.Totals{
		Count:         row.Count,
		PartsTotal:    row.PartsTotal,
		ServiceCharge: row.ServiceCharge,
	}, nil
}

// Compile-time check
var (
	_ invoice.Repository = (*InvoiceGormRepository)(nil)
	_ sales.Repository   = (*InvoiceGormRepository)(nil)
)
