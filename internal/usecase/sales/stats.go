package sales

import (
	"context"

	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/sales"
)

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

func (uc *GetStats) Execute(ctx context.Context, id account.Identity, garageID string) (*domain.Stats, error) {
	if err := account.AuthorizeAdmin(id); err != nil {
		return nil, err
	}

	totals, err := uc.repo.InvoiceTotals(ctx, garageID)
	if err != nil {
		return nil, err
	}

	stats := domain.NewStats(totals)
	return &stats, nil
}
