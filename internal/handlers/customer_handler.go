package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	ucCustomer "github.com/BruksfildServices01/garage-manager/internal/usecase/customer"
)

type CustomerHandler struct {
	list         *ucCustomer.ListCustomers
	get          *ucCustomer.GetCustomer
	findOrCreate *ucCustomer.FindOrCreate
	invoices     *ucCustomer.ListInvoices
}

func NewCustomerHandler(
	list *ucCustomer.ListCustomers,
	get *ucCustomer.GetCustomer,
	findOrCreate *ucCustomer.FindOrCreate,
	invoices *ucCustomer.ListInvoices,
) *CustomerHandler {
	return &CustomerHandler{list: list, get: get, findOrCreate: findOrCreate, invoices: invoices}
}

type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	BikeNumber string `json:"bike_number" binding:"required"`
}

// ======================================================
// LIST (?q= matches name, phone or bike number)
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.list.Execute(c.Request.Context(), middleware.GarageIDFrom(c), c.Query("q"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, customers)
}

// Create returns the existing customer when phone and bike number
// already match one.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.findOrCreate.Execute(c.Request.Context(), ucCustomer.FindOrCreateInput{
		GarageID:   middleware.GarageIDFrom(c),
		Name:       req.Name,
		Phone:      req.Phone,
		BikeNumber: req.BikeNumber,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.get.Execute(c.Request.Context(), middleware.GarageIDFrom(c), c.Param("customerId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, customer)
}

func (h *CustomerHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoices.Execute(c.Request.Context(), middleware.GarageIDFrom(c), c.Param("customerId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, invoices)
}
