package inventory

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type ListParts struct {
	repo domain.Repository
}

func NewListParts(repo domain.Repository) *ListParts {
	return &ListParts{repo: repo}
}

func (uc *ListParts) Execute(ctx context.Context, garageID string) ([]models.SparePart, error) {
	return uc.repo.ListParts(ctx, garageID)
}

// ListLowStock returns parts with quantity <= their threshold.
type ListLowStock struct {
	repo domain.Repository
}

func NewListLowStock(repo domain.Repository) *ListLowStock {
	return &ListLowStock{repo: repo}
}

func (uc *ListLowStock) Execute(ctx context.Context, garageID string) ([]models.SparePart, error) {
	return uc.repo.ListLowStockParts(ctx, garageID)
}

type GetPart struct {
	repo domain.Repository
}

func NewGetPart(repo domain.Repository) *GetPart {
	return &GetPart{repo: repo}
}

func (uc *GetPart) Execute(ctx context.Context, garageID, id string) (*models.SparePart, error) {
	return uc.repo.GetPart(ctx, garageID, id)
}

type FindByBarcode struct {
	repo domain.Repository
}

func NewFindByBarcode(repo domain.Repository) *FindByBarcode {
	return &FindByBarcode{repo: repo}
}

func (uc *FindByBarcode) Execute(ctx context.Context, garageID, barcode string) (*models.SparePart, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	return uc.repo.GetPartByBarcode(ctx, garageID, barcode)
}
