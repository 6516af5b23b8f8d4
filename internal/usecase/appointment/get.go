package appointment

import (
	"context"

	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/appointment"
	"github.com/Jeffry-N/Beiruti-Fade/internal/dto"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*dto.AppointmentViewDTO, error) {

	ap, err := uc.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	view := toView(ap)
	return &view, nil
}
