package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/appointment"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	"github.com/Jeffry-N/Beiruti-Fade/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	appointmentID uint,
	status domain.Status,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("status", string(status))

	return res.RowsAffected, res.Error
}

// Reschedule moves date and time only; status is deliberately untouched.
func (r *AppointmentGormRepository) Reschedule(
	ctx context.Context,
	appointmentID uint,
	date string,
	timeOfDay string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Updates(map[string]any{
			"appointment_date": date,
			"appointment_time": timeOfDay,
		})

	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {
	return r.list(ctx, "barber_id = ?", barberID)
}

func (r *AppointmentGormRepository) ListForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {
	return r.list(ctx, "customer_id = ?", customerID)
}

func (r *AppointmentGormRepository) list(
	ctx context.Context,
	cond string,
	id uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service").
		Where(cond, id).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
