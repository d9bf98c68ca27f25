package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	ucInvoice "github.com/BruksfildServices01/garage-manager/internal/usecase/invoice"
)

type InvoiceHandler struct {
	issue    *ucInvoice.Issue
	list     *ucInvoice.List
	get      *ucInvoice.Get
	delivery *ucInvoice.UpdateDelivery
	pdf      *ucInvoice.AttachPDF
}

// NewInvoiceHandler wires the invoice endpoints. pdf may be nil when
// object storage is not configured.
func NewInvoiceHandler(
	issue *ucInvoice.Issue,
	list *ucInvoice.List,
	get *ucInvoice.Get,
	delivery *ucInvoice.UpdateDelivery,
	pdf *ucInvoice.AttachPDF,
) *InvoiceHandler {
	return &InvoiceHandler{issue: issue, list: list, get: get, delivery: delivery, pdf: pdf}
}

type IssueInvoiceRequest struct {
	JobCardID     string           `json:"job_card_id" binding:"required"`
	ServiceCharge *decimal.Decimal `json:"service_charge"`
	InvoiceNumber string           `json:"invoice_number"`
	PDFURL        *string          `json:"pdf_url"`
	WhatsAppSent  bool             `json:"whatsapp_sent"`
}

type UpdateInvoiceRequest struct {
	PDFURL       *string `json:"pdf_url"`
	WhatsAppSent *bool   `json:"whatsapp_sent"`
}

// Issue completes the job card and bills it in one step.
func (h *InvoiceHandler) Issue(c *gin.Context) {
	var req IssueInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	inv, err := h.issue.Execute(c.Request.Context(), ucInvoice.IssueInput{
		GarageID:      middleware.GarageIDFrom(c),
		UserID:        middleware.IdentityFrom(c).UserID,
		JobCardID:     req.JobCardID,
		ServiceCharge: req.ServiceCharge,
		InvoiceNumber: req.InvoiceNumber,
		PDFURL:        req.PDFURL,
		WhatsAppSent:  req.WhatsAppSent,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, inv)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.list.Execute(c.Request.Context(), middleware.GarageIDFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.get.Execute(c.Request.Context(), middleware.GarageIDFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) UpdateDelivery(c *gin.Context) {
	var req UpdateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	inv, err := h.delivery.Execute(
		c.Request.Context(),
		middleware.GarageIDFrom(c),
		middleware.IdentityFrom(c).UserID,
		c.Param("id"),
		ucInvoice.DeliveryPatch{PDFURL: req.PDFURL, WhatsAppSent: req.WhatsAppSent},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, inv)
}

// AttachPDF expects a multipart form with a "pdf" file.
func (h *InvoiceHandler) AttachPDF(c *gin.Context) {
	data, ok := readUpload(c, "pdf")
	if !ok {
		return
	}

	inv, err := h.pdf.Execute(
		c.Request.Context(),
		middleware.GarageIDFrom(c),
		middleware.IdentityFrom(c).UserID,
		c.Param("id"),
		data,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, inv)
}
