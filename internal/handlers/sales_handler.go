package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	ucSales "github.com/BruksfildServices01/garage-manager/internal/usecase/sales"
)

type SalesHandler struct {
	stats     *ucSales.GetStats
	dashboard *ucSales.Dashboard
}

func NewSalesHandler(stats *ucSales.GetStats, dashboard *ucSales.Dashboard) *SalesHandler {
	return &SalesHandler{stats: stats, dashboard: dashboard}
}

func (h *SalesHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context(), middleware.IdentityFrom(c), middleware.GarageIDFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *SalesHandler) Dashboard(c *gin.Context) {
	d, err := h.dashboard.Execute(c.Request.Context(), middleware.IdentityFrom(c), middleware.GarageIDFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}
