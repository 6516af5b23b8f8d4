package appointment

import (
	"context"
	"time"

	"github.com/Jeffry-N/Beiruti-Fade/internal/audit"
	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/appointment"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	"github.com/Jeffry-N/Beiruti-Fade/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	CustomerID uint
	BarberID   uint
	ServiceID  uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	if in.CustomerID == 0 || in.BarberID == 0 || in.ServiceID == 0 {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	if err := validateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		CustomerID:      in.CustomerID,
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: "customer",
		ActorID:   &in.CustomerID,
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

// validateSlot keeps malformed dates out of the store; both values stay in
// their wire format.
func validateSlot(date, timeOfDay string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	return nil
}
