package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	ucAccount "github.com/BruksfildServices01/garage-manager/internal/usecase/account"
)

type GarageHandler struct {
	get    *ucAccount.GetGarage
	update *ucAccount.UpdateGarage
	logo   *ucAccount.UploadLogo
	staff  *ucAccount.CreateStaff
}

// NewGarageHandler wires the garage profile endpoints. logo may be nil
// when object storage is not configured.
func NewGarageHandler(
	get *ucAccount.GetGarage,
	update *ucAccount.UpdateGarage,
	logo *ucAccount.UploadLogo,
	staff *ucAccount.CreateStaff,
) *GarageHandler {
	return &GarageHandler{get: get, update: update, logo: logo, staff: staff}
}

type UpdateGarageRequest struct {
	Name      *string `json:"name"`
	OwnerName *string `json:"owner_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *GarageHandler) Get(c *gin.Context) {
	g, err := h.get.Execute(c.Request.Context(), middleware.IdentityFrom(c), middleware.GarageIDFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, g)
}

func (h *GarageHandler) Update(c *gin.Context) {
	var req UpdateGarageRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.update.Execute(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		middleware.GarageIDFrom(c),
		ucAccount.GaragePatch{
			Name:      req.Name,
			OwnerName: req.OwnerName,
			Phone:     req.Phone,
			Email:     req.Email,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, g)
}

// UploadLogo expects a multipart form with a "logo" image file.
func (h *GarageHandler) UploadLogo(c *gin.Context) {
	data, ok := readUpload(c, "logo")
	if !ok {
		return
	}

	g, err := h.logo.Execute(c.Request.Context(), middleware.IdentityFrom(c), middleware.GarageIDFrom(c), data)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, g)
}

func (h *GarageHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.staff.Execute(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		middleware.GarageIDFrom(c),
		ucAccount.CreateStaffInput{Name: req.Name, Email: req.Email, Password: req.Password},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, user)
}
