package inventory

import (
	"context"

	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// Repository is the only writer of spare_parts.quantity.
type Repository interface {
	ListParts(ctx context.Context, garageID string) ([]models.SparePart, error)
	ListLowStockParts(ctx context.Context, garageID string) ([]models.SparePart, error)

	GetPart(ctx context.Context, garageID, id string) (*models.SparePart, error)
	GetPartByBarcode(ctx context.Context, garageID, barcode string) (*models.SparePart, error)

	CreatePart(ctx context.Context, part *models.SparePart) error
	UpdatePart(ctx context.Context, part *models.SparePart) error

	// AdjustPartQuantity applies quantity += delta in a single store-side
	// statement. The result may go below zero.
	AdjustPartQuantity(ctx context.Context, garageID, id string, delta int) (*models.SparePart, error)

	// DeletePart succeeds when the part is already gone.
	DeletePart(ctx context.Context, garageID, id string) error
}
