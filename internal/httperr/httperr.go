package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Status maps a business kind to its HTTP status.
func Status(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindUnauthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Respond writes err to the client. Business errors keep their code;
// anything else is logged and reported as internal_error.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, Status(be.Kind), be.Code, messageFor(be.Code))
		return
	}

	log.WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).WithError(err).Error("unexpected error")

	Internal(c, "internal_error", "Unexpected server error.")
}

// Abort is Respond for middleware: the handler chain stops.
func Abort(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}

var messages = map[string]string{
	"invalid_request":             "Invalid request payload.",
	"invalid_activation_code":     "Invalid activation code.",
	"duplicate_identity":          "A user with this email already exists.",
	"invalid_email_domain":        "The email domain does not look valid.",
	"invalid_credentials":         "Invalid credentials.",
	"missing_token":               "Access token required.",
	"invalid_token":               "Invalid or expired token.",
	"unknown_identity":            "User not found.",
	"access_denied":               "Access denied to this garage.",
	"insufficient_permissions":    "Insufficient permissions.",
	"garage_not_found":            "Garage not found.",
	"customer_not_found":          "Customer not found.",
	"spare_part_not_found":        "Spare part not found.",
	"unknown_spare_part":          "A listed spare part does not exist in this garage.",
	"job_card_not_found":          "Job card not found.",
	"job_card_completed":          "Completed job cards cannot be edited.",
	"invalid_status":              "Unknown job card status.",
	"invalid_service_charge":      "Service charge cannot be negative.",
	"invalid_part_quantity":       "Part quantity must be positive.",
	"invalid_part_price":          "Part price cannot be negative.",
	"invalid_name":                "Name is required.",
	"invalid_price":               "Price cannot be negative.",
	"invalid_quantity":            "Quantity cannot be negative.",
	"invalid_low_stock_threshold": "Low stock threshold cannot be negative.",
	"invalid_garage_profile":      "Garage name and email are required.",
	"invoice_not_found":           "Invoice not found.",
	"duplicate_invoice":           "An invoice already exists for this job card.",
	"duplicate_invoice_number":    "Invoice number already used in this garage.",
	"duplicate_barcode":           "Barcode already used by another part.",
	"invalid_image":               "Unsupported or corrupt image.",
	"invalid_pdf":                 "The uploaded file is not a PDF.",
	"too_many_requests":           "Too many requests.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
