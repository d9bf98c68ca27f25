package inventory

import (
	"context"
	"io"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/garage-manager/internal/timezone"
)

var exportHeaders = []string{
	"ID", "Name", "PartNumber", "Barcode", "Price",
	"Quantity", "LowStockThreshold", "LowStock", "UpdatedAt",
}

// ExportParts writes the garage's inventory as an .xlsx workbook with
// timestamps in loc.
type ExportParts struct {
	repo domain.Repository
	loc  *time.Location
}

func NewExportParts(repo domain.Repository, loc *time.Location) *ExportParts {
	return &ExportParts{repo: repo, loc: loc}
}

func (uc *ExportParts) Execute(ctx context.Context, id account.Identity, garageID string, w io.Writer) error {
	if err := account.AuthorizeAdmin(id); err != nil {
		return err
	}

	parts, err := uc.repo.ListParts(ctx, garageID)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Spare Parts")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, p := range parts {
		row := sheet.AddRow()

		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.PartNumber)
		if p.Barcode != nil {
			row.AddCell().SetValue(*p.Barcode)
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(p.Price.StringFixed(2))
		row.AddCell().SetValue(p.Quantity)
		row.AddCell().SetValue(p.LowStockThreshold)
		if p.LowStock() {
			row.AddCell().SetValue("yes")
		} else {
			row.AddCell().SetValue("no")
		}
		row.AddCell().SetValue(timezone.Stamp(p.UpdatedAt, uc.loc))
	}

	return file.Write(w)
}
