package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	"github.com/Jeffry-N/Beiruti-Fade/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// pgUniqueViolation is the class 23 code Postgres raises on a duplicate key.
const pgUniqueViolation = "23505"

// --------------------------------------------------
// Insert
// --------------------------------------------------

func (r *AccountGormRepository) Insert(
	ctx context.Context,
	kind domain.Kind,
	acc domain.NewAccount,
) (uint, error) {

	var id uint
	var err error

	switch kind {
	case domain.KindBarber:
		barber := models.Barber{
			FullName: acc.FullName,
			Username: acc.Username,
			Email:    acc.Email,
			Password: acc.Password,
		}
		err = r.db.WithContext(ctx).Create(&barber).Error
		id = barber.ID
	default:
		customer := models.Customer{
			FullName: acc.FullName,
			Username: acc.Username,
			Email:    acc.Email,
			Password: acc.Password,
		}
		err = r.db.WithContext(ctx).Create(&customer).Error
		id = customer.ID
	}

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, httperr.ErrBusiness("username_taken")
		}
		return 0, err
	}

	return id, nil
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AccountGormRepository) FindByID(
	ctx context.Context,
	kind domain.Kind,
	id uint,
) (*domain.Profile, error) {

	switch kind {
	case domain.KindBarber:
		var barber models.Barber
		if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
			return nil, asNotFound(err)
		}
		return barberProfile(&barber), nil
	default:
		var customer models.Customer
		if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
			return nil, asNotFound(err)
		}
		return customerProfile(&customer), nil
	}
}

func (r *AccountGormRepository) ListBarbers(
	ctx context.Context,
) ([]domain.Profile, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).Find(&barbers).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Profile, 0, len(barbers))
	for i := range barbers {
		out = append(out, *barberProfile(&barbers[i]))
	}
	return out, nil
}

// --------------------------------------------------
// Partial update
// --------------------------------------------------

// ApplyUpdate executes the plan's single parameterized statement. The plan
// owns the statement text; every value, including the id, is bound.
func (r *AccountGormRepository) ApplyUpdate(
	ctx context.Context,
	plan *domain.UpdatePlan,
) (int64, error) {

	res := r.db.WithContext(ctx).Exec(plan.SQL(), plan.Args()...)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// --------------------------------------------------
// Authenticate
// --------------------------------------------------

// Authenticate matches username and password equality in a single lookup.
// Credential comparison stays in the store so a hashing layer can replace
// this query without touching callers.
func (r *AccountGormRepository) Authenticate(
	ctx context.Context,
	kind domain.Kind,
	username string,
	password string,
) (*domain.Profile, error) {

	switch kind {
	case domain.KindBarber:
		var barber models.Barber
		if err := r.db.WithContext(ctx).
			Where("username = ? AND password = ?", username, password).
			First(&barber).Error; err != nil {
			return nil, asInvalidCredentials(err)
		}
		return barberProfile(&barber), nil
	default:
		var customer models.Customer
		if err := r.db.WithContext(ctx).
			Where("username = ? AND password = ?", username, password).
			First(&customer).Error; err != nil {
			return nil, asInvalidCredentials(err)
		}
		return customerProfile(&customer), nil
	}
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func customerProfile(c *models.Customer) *domain.Profile {
	return &domain.Profile{
		ID:       c.ID,
		Kind:     domain.KindCustomer,
		FullName: c.FullName,
		Username: c.Username,
		Email:    c.Email,
	}
}

func barberProfile(b *models.Barber) *domain.Profile {
	return &domain.Profile{
		ID:       b.ID,
		Kind:     domain.KindBarber,
		FullName: b.FullName,
		Username: b.Username,
		Email:    b.Email,
		Bio:      b.Bio,
		ImageUrl: b.ImageUrl,
	}
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness("account_not_found")
	}
	return err
}

func asInvalidCredentials(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness("invalid_credentials")
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
