package jobcard

import "github.com/BruksfildServices01/garage-manager/internal/httperr"

// ===============================
// Job Card Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Validations
// ===============================

// CanComplete allows the single pending -> completed transition.
func CanComplete(current Status) error {
	if current != StatusPending {
		return httperr.ErrConflict("duplicate_invoice")
	}
	return nil
}

// CanEdit allows edits only while the card is still open.
func CanEdit(current Status) error {
	if current != StatusPending {
		return httperr.ErrConflict("job_card_completed")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
