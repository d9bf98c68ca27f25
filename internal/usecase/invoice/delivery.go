package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/invoice"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/imaging"
	"github.com/BruksfildServices01/garage-manager/internal/infra/objectstore"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// DeliveryPatch holds the only invoice fields that change after issue.
type DeliveryPatch struct {
	PDFURL       *string
	WhatsAppSent *bool
}

type UpdateDelivery struct {
	invoices domain.Repository
	audit    *audit.Dispatcher
}

func NewUpdateDelivery(invoices domain.Repository, audit *audit.Dispatcher) *UpdateDelivery {
	return &UpdateDelivery{invoices: invoices, audit: audit}
}

func (uc *UpdateDelivery) Execute(
	ctx context.Context,
	garageID, userID, id string,
	patch DeliveryPatch,
) (*models.Invoice, error) {

	inv, err := uc.invoices.GetInvoice(ctx, garageID, id)
	if err != nil {
		return nil, err
	}

	if patch.PDFURL != nil {
		inv.PDFURL = patch.PDFURL
	}
	if patch.WhatsAppSent != nil {
		inv.WhatsAppSent = *patch.WhatsAppSent
	}

	if err := uc.invoices.UpdateInvoiceDelivery(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: garageID,
		UserID:   &userID,
		Action:   "invoice_delivery_updated",
		Entity:   "invoice",
		EntityID: &inv.ID,
		Metadata: map[string]any{"whatsapp_sent": inv.WhatsAppSent},
	})

	return inv, nil
}

// AttachPDF stores a rendered invoice and records its URL.
type AttachPDF struct {
	delivery *UpdateDelivery
	invoices domain.Repository
	uploader objectstore.Uploader
}

func NewAttachPDF(
	invoices domain.Repository,
	uploader objectstore.Uploader,
	audit *audit.Dispatcher,
) *AttachPDF {
	return &AttachPDF{
		delivery: NewUpdateDelivery(invoices, audit),
		invoices: invoices,
		uploader: uploader,
	}
}

func (uc *AttachPDF) Execute(
	ctx context.Context,
	garageID, userID, id string,
	pdf []byte,
) (*models.Invoice, error) {

	if !imaging.IsPDF(pdf) {
		return nil, httperr.ErrBusiness("invalid_pdf")
	}

	inv, err := uc.invoices.GetInvoice(ctx, garageID, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("garages/%s/invoices/%s-%s.pdf", garageID, inv.InvoiceNumber, uuid.NewString())
	url, err := uc.uploader.Put(ctx, key, pdf, "application/pdf")
	if err != nil {
		return nil, err
	}

	return uc.delivery.Execute(ctx, garageID, userID, id, DeliveryPatch{PDFURL: &url})
}
