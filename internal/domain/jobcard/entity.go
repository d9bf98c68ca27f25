package jobcard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Reprice sets the service charge and recomputes the total from the
// snapshot lines, keeping total = service charge + sum(price * qty).
func Reprice(jc *models.JobCard, serviceCharge decimal.Decimal) error {
	if serviceCharge.IsNegative() {
		return httperr.ErrBusiness("invalid_service_charge")
	}
	jc.ServiceCharge = serviceCharge
	jc.TotalAmount = serviceCharge.Add(jc.PartsTotal())
	return nil
}

// Complete flips a pending card to completed with the final charge.
func Complete(jc *models.JobCard, serviceCharge decimal.Decimal, now time.Time) error {
	if err := CanComplete(Status(jc.Status)); err != nil {
		return err
	}
	if err := Reprice(jc, serviceCharge); err != nil {
		return err
	}

	jc.Status = string(StatusCompleted)
	jc.CompletedAt = &now
	return nil
}

// ValidateLines rejects empty or negative snapshot lines.
func ValidateLines(lines []models.JobCardPart) error {
	for _, l := range lines {
		if l.Quantity <= 0 {
			return httperr.ErrBusiness("invalid_part_quantity")
		}
		if l.Price.IsNegative() {
			return httperr.ErrBusiness("invalid_part_price")
		}
	}
	return nil
}
