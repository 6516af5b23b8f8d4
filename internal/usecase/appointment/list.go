package appointment

import (
	"context"

	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/appointment"
	"github.com/Jeffry-N/Beiruti-Fade/internal/dto"
	"github.com/Jeffry-N/Beiruti-Fade/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForBarber(
	ctx context.Context,
	barberID uint,
) ([]dto.AppointmentViewDTO, error) {

	apps, err := uc.repo.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	return toViews(apps), nil
}

func (uc *ListAppointments) ForCustomer(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentViewDTO, error) {

	apps, err := uc.repo.ListForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toViews(apps), nil
}

func toViews(apps []models.Appointment) []dto.AppointmentViewDTO {
	out := make([]dto.AppointmentViewDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, toView(&ap))
	}
	return out
}

func toView(ap *models.Appointment) dto.AppointmentViewDTO {
	return dto.AppointmentViewDTO{
		ID:           ap.ID,
		CustomerID:   ap.CustomerID,
		CustomerName: ap.Customer.FullName,
		BarberID:     ap.BarberID,
		BarberName:   ap.Barber.FullName,
		ServiceName:  ap.Service.Name,
		Date:         ap.AppointmentDate,
		Time:         ap.AppointmentTime,
		Status:       ap.Status,
	}
}
