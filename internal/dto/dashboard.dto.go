package dto

import (
	"github.com/BruksfildServices01/garage-manager/internal/domain/sales"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// Dashboard is the landing summary of a garage. Sales is only filled
// for admins.
type Dashboard struct {
	PendingJobCards []models.JobCard   `json:"pending_job_cards"`
	LowStockParts   []models.SparePart `json:"low_stock_parts"`
	RecentInvoices  []models.Invoice   `json:"recent_invoices"`
	Sales           *sales.Stats       `json:"sales,omitempty"`
}
