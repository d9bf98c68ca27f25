package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	ucJobCard "github.com/BruksfildServices01/garage-manager/internal/usecase/jobcard"
)

// ======================================================
// HANDLER
// ======================================================

type JobCardHandler struct {
	create *ucJobCard.Create
	update *ucJobCard.Update
	list   *ucJobCard.List
	get    *ucJobCard.Get
}

func NewJobCardHandler(
	create *ucJobCard.Create,
	update *ucJobCard.Update,
	list *ucJobCard.List,
	get *ucJobCard.Get,
) *JobCardHandler {
	return &JobCardHandler{create: create, update: update, list: list, get: get}
}

// ======================================================
// REQUESTS
// ======================================================

type JobCardLineRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type CreateJobCardRequest struct {
	CustomerName  string               `json:"customer_name" binding:"required"`
	Phone         string               `json:"phone" binding:"required"`
	BikeNumber    string               `json:"bike_number" binding:"required"`
	Complaint     string               `json:"complaint" binding:"required"`
	SpareParts    []JobCardLineRequest `json:"spare_parts"`
	ServiceCharge decimal.Decimal      `json:"service_charge"`
}

type UpdateJobCardRequest struct {
	Complaint     *string               `json:"complaint"`
	SpareParts    *[]JobCardLineRequest `json:"spare_parts"`
	ServiceCharge *decimal.Decimal      `json:"service_charge"`
}

func lineInputs(lines []JobCardLineRequest) []ucJobCard.LineInput {
	out := make([]ucJobCard.LineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, ucJobCard.LineInput{
			PartID:   l.ID,
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
		})
	}
	return out
}

// ======================================================
// HANDLERS
// ======================================================

func (h *JobCardHandler) Create(c *gin.Context) {
	var req CreateJobCardRequest
	if !bindJSON(c, &req) {
		return
	}

	jc, err := h.create.Execute(c.Request.Context(), ucJobCard.CreateInput{
		GarageID:      middleware.GarageIDFrom(c),
		UserID:        middleware.IdentityFrom(c).UserID,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		BikeNumber:    req.BikeNumber,
		Complaint:     req.Complaint,
		SpareParts:    lineInputs(req.SpareParts),
		ServiceCharge: req.ServiceCharge,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, jc)
}

func (h *JobCardHandler) Update(c *gin.Context) {
	var req UpdateJobCardRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := ucJobCard.Patch{
		Complaint:     req.Complaint,
		ServiceCharge: req.ServiceCharge,
	}
	if req.SpareParts != nil {
		lines := lineInputs(*req.SpareParts)
		patch.SpareParts = &lines
	}

	jc, err := h.update.Execute(
		c.Request.Context(),
		middleware.GarageIDFrom(c),
		middleware.IdentityFrom(c).UserID,
		c.Param("id"),
		patch,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, jc)
}

// List accepts ?status=pending|completed.
func (h *JobCardHandler) List(c *gin.Context) {
	cards, err := h.list.Execute(c.Request.Context(), middleware.GarageIDFrom(c), c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, cards)
}

func (h *JobCardHandler) Get(c *gin.Context) {
	jc, err := h.get.Execute(c.Request.Context(), middleware.GarageIDFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, jc)
}
