package appointment

import "github.com/Jeffry-N/Beiruti-Fade/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ParseStatus validates a request-supplied status against the enumeration.
// Any enumerated status may replace any other; there is no transition table,
// but unknown values are rejected instead of stored.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// InitialStatus is the state every booking starts in.
func InitialStatus() Status {
	return StatusPending
}
