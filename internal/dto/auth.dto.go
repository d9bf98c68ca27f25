package dto

import "github.com/BruksfildServices01/garage-manager/internal/models"

// AuthResult is returned by register and login. The password hash never
// leaves the server: models.User hides it from JSON.
type AuthResult struct {
	User   *models.User   `json:"user"`
	Garage *models.Garage `json:"garage,omitempty"`
	Token  string         `json:"token"`
}

type Profile struct {
	User   *models.User   `json:"user"`
	Garage *models.Garage `json:"garage,omitempty"`
}
