package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	ucInventory "github.com/BruksfildServices01/garage-manager/internal/usecase/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ======================================================
// HANDLER
// ======================================================

type SparePartHandler struct {
	list      *ucInventory.ListParts
	lowStock  *ucInventory.ListLowStock
	get       *ucInventory.GetPart
	byBarcode *ucInventory.FindByBarcode
	create    *ucInventory.CreatePart
	update    *ucInventory.UpdatePart
	remove    *ucInventory.DeletePart
	export    *ucInventory.ExportParts
}

func NewSparePartHandler(
	list *ucInventory.ListParts,
	lowStock *ucInventory.ListLowStock,
	get *ucInventory.GetPart,
	byBarcode *ucInventory.FindByBarcode,
	create *ucInventory.CreatePart,
	update *ucInventory.UpdatePart,
	remove *ucInventory.DeletePart,
	export *ucInventory.ExportParts,
) *SparePartHandler {
	return &SparePartHandler{
		list:      list,
		lowStock:  lowStock,
		get:       get,
		byBarcode: byBarcode,
		create:    create,
		update:    update,
		remove:    remove,
		export:    export,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// SparePartRequest serves both create and partial update; absent fields
// stay untouched.
type SparePartRequest struct {
	Name              *string          `json:"name"`
	PartNumber        *string          `json:"part_number"`
	Price             *decimal.Decimal `json:"price"`
	Quantity          *int             `json:"quantity"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	Barcode           *string          `json:"barcode"`
}

func (r SparePartRequest) patch() inventory.Patch {
	return inventory.Patch{
		Name:              r.Name,
		PartNumber:        r.PartNumber,
		Price:             r.Price,
		Quantity:          r.Quantity,
		LowStockThreshold: r.LowStockThreshold,
		Barcode:           r.Barcode,
	}
}

// ======================================================
// READ
// ======================================================

func (h *SparePartHandler) List(c *gin.Context) {
	parts, err := h.list.Execute(c.Request.Context(), middleware.GarageIDFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, parts)
}

func (h *SparePartHandler) LowStock(c *gin.Context) {
	parts, err := h.lowStock.Execute(c.Request.Context(), middleware.GarageIDFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, parts)
}

func (h *SparePartHandler) Get(c *gin.Context) {
	part, err := h.get.Execute(c.Request.Context(), middleware.GarageIDFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, part)
}

func (h *SparePartHandler) FindByBarcode(c *gin.Context) {
	part, err := h.byBarcode.Execute(c.Request.Context(), middleware.GarageIDFrom(c), c.Param("barcode"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, part)
}

// Export renders the whole workbook before writing so a failure still
// produces a JSON error.
func (h *SparePartHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.export.Execute(c.Request.Context(), middleware.IdentityFrom(c), middleware.GarageIDFrom(c), &buf); err != nil {
		httperr.Respond(c, err)
		return
	}

	filename := fmt.Sprintf("spare-parts-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ======================================================
// WRITE
// ======================================================

func (h *SparePartHandler) Create(c *gin.Context) {
	var req SparePartRequest
	if !bindJSON(c, &req) {
		return
	}

	part, err := h.create.Execute(c.Request.Context(), middleware.IdentityFrom(c), middleware.GarageIDFrom(c), req.patch())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, part)
}

func (h *SparePartHandler) Update(c *gin.Context) {
	var req SparePartRequest
	if !bindJSON(c, &req) {
		return
	}

	part, err := h.update.Execute(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		middleware.GarageIDFrom(c),
		c.Param("id"),
		req.patch(),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, part)
}

func (h *SparePartHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.IdentityFrom(c), middleware.GarageIDFrom(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
