package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	"github.com/BruksfildServices01/garage-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

// NewAuditLogsHandler reads ?from/?to as days in loc.
func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

// List filters by ?action, ?entity and ?from/?to (YYYY-MM-DD, to is
// inclusive) and pages with ?page/?limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		GarageID: middleware.GarageIDFrom(c),
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.Page <= 0 {
		f.Page = 1
	}

	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultLimit)))
	if f.Limit <= 0 || f.Limit > audit.MaxLimit {
		f.Limit = audit.DefaultLimit
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := timezone.ParseDay(fromStr, h.loc); err == nil {
			f.From = &from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := timezone.ParseDay(toStr, h.loc); err == nil {
			end := to.Add(24 * time.Hour)
			f.To = &end
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, f.Page, f.Limit, total)
}
