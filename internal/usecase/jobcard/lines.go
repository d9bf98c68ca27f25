package jobcard

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/jobcard"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// LineInput is one requested spare part. Name and Price are only used
// when PartID does not resolve in the garage.
type LineInput struct {
	PartID   string
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// resolvedLine pairs a snapshot line with whether it names a live part.
type resolvedLine struct {
	models.JobCardPart
	live bool
}

// resolveLines snapshots the live name and price of every part that
// exists in the garage. Unknown parts are kept as typed by the client
// unless strict is set, in which case the whole request fails.
func resolveLines(
	ctx context.Context,
	parts inventory.Repository,
	garageID string,
	in []LineInput,
	strict bool,
) ([]resolvedLine, error) {

	out := make([]resolvedLine, 0, len(in))

	for _, l := range in {
		line := resolvedLine{JobCardPart: models.JobCardPart{
			PartID:   strings.TrimSpace(l.PartID),
			Name:     strings.TrimSpace(l.Name),
			Quantity: l.Quantity,
			Price:    l.Price,
		}}

		if line.PartID != "" {
			p, err := parts.GetPart(ctx, garageID, line.PartID)
			switch {
			case err == nil:
				line.Name = p.Name
				line.Price = p.Price
				line.live = true
			case !httperr.IsBusiness(err, "spare_part_not_found"):
				return nil, err
			case strict:
				return nil, httperr.ErrBusiness("unknown_spare_part")
			default:
				log.WithFields(log.Fields{
					"garage_id": garageID,
					"part_id":   line.PartID,
				}).Warn("job card line references unknown spare part, stock not debited")
			}
		}

		if line.Name == "" {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		out = append(out, line)
	}

	snapshot := snapshotOf(out)
	if err := domain.ValidateLines(snapshot); err != nil {
		return nil, err
	}
	return out, nil
}

func snapshotOf(lines []resolvedLine) []models.JobCardPart {
	out := make([]models.JobCardPart, len(lines))
	for i, l := range lines {
		out[i] = l.JobCardPart
	}
	return out
}
