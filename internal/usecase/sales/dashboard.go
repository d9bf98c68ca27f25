package sales

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/garage-manager/internal/domain/invoice"
	"github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/sales"
	"github.com/BruksfildServices01/garage-manager/internal/dto"
)

const recentInvoices = 5

type Dashboard struct {
	jobs     jobcard.Repository
	parts    inventory.Repository
	invoices invoice.Repository
	stats    *GetStats
}

func NewDashboard(
	jobs jobcard.Repository,
	parts inventory.Repository,
	invoices invoice.Repository,
	sales domain.Repository,
) *Dashboard {
	return &Dashboard{
		jobs:     jobs,
		parts:    parts,
		invoices: invoices,
		stats:    NewGetStats(sales),
	}
}

// Execute runs the independent reads concurrently and fails as a whole
// if any of them fails.
func (uc *Dashboard) Execute(ctx context.Context, id account.Identity, garageID string) (*dto.Dashboard, error) {
	out := &dto.Dashboard{}
	pending := jobcard.StatusPending

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		cards, err := uc.jobs.ListJobCards(ctx, garageID, &pending)
		out.PendingJobCards = cards
		return err
	})
	group.Go(func() error {
		parts, err := uc.parts.ListLowStockParts(ctx, garageID)
		out.LowStockParts = parts
		return err
	})
	group.Go(func() error {
		invoices, err := uc.invoices.ListInvoices(ctx, garageID)
		if len(invoices) > recentInvoices {
			invoices = invoices[:recentInvoices]
		}
		out.RecentInvoices = invoices
		return err
	})

	if account.AuthorizeAdmin(id) == nil {
		group.Go(func() error {
			stats, err := uc.stats.Execute(ctx, id, garageID)
			out.Sales = stats
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
