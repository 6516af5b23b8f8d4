package appointment

import (
	"context"

	"github.com/Jeffry-N/Beiruti-Fade/internal/audit"
	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/appointment"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
)

type Reschedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReschedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves an appointment to a new slot. Status is left alone; callers
// that want a state change use UpdateStatus explicitly.
func (uc *Reschedule) Execute(
	ctx context.Context,
	appointmentID uint,
	date string,
	timeOfDay string,
) error {

	if err := validateSlot(date, timeOfDay); err != nil {
		return err
	}

	rows, err := uc.repo.Reschedule(ctx, appointmentID, date, timeOfDay)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: "customer",
		Action:    "appointment_rescheduled",
		Entity:    "appointment",
		EntityID:  &appointmentID,
		Metadata:  map[string]any{"date": date, "time": timeOfDay},
	})

	return nil
}
