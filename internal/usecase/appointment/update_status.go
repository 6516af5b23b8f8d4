package appointment

import (
	"context"

	"github.com/Jeffry-N/Beiruti-Fade/internal/audit"
	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/appointment"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	rawStatus string,
) (domain.Status, error) {

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return "", err
	}

	rows, err := uc.repo.UpdateStatus(ctx, appointmentID, status)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "", httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: "barber",
		Action:    "appointment_status_changed",
		Entity:    "appointment",
		EntityID:  &appointmentID,
		Metadata:  map[string]any{"status": string(status)},
	})

	return status, nil
}
