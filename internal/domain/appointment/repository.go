package appointment

import (
	"context"

	"github.com/Jeffry-N/Beiruti-Fade/internal/models"
)

type Repository interface {
	// -------- Booking --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- State change --------
	UpdateStatus(
		ctx context.Context,
		appointmentID uint,
		status Status,
	) (int64, error)

	Reschedule(
		ctx context.Context,
		appointmentID uint,
		date string,
		timeOfDay string,
	) (int64, error)

	FindByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// -------- Listing --------
	ListForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	ListForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)
}
