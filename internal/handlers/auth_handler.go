package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/garage-manager/internal/usecase/account"
)

type AuthHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
}

func NewAuthHandler(register *ucAccount.Register, login *ucAccount.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Name           string `json:"name" binding:"required"`
	ActivationCode string `json:"activation_code" binding:"required"`

	GarageName  string `json:"garage_name"`
	OwnerName   string `json:"owner_name"`
	GaragePhone string `json:"garage_phone"`
	GarageEmail string `json:"garage_email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		ActivationCode: req.ActivationCode,
		GarageName:     req.GarageName,
		OwnerName:      req.OwnerName,
		GaragePhone:    req.GaragePhone,
		GarageEmail:    req.GarageEmail,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}
