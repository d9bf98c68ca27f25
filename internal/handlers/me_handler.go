package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	ucAccount "github.com/BruksfildServices01/garage-manager/internal/usecase/account"
)

type MeHandler struct {
	profile *ucAccount.GetProfile
}

func NewMeHandler(profile *ucAccount.GetProfile) *MeHandler {
	return &MeHandler{profile: profile}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	res, err := h.profile.Execute(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}
