package account

import "context"

// Profile is the public projection of an account. Password never leaves the
// repository layer.
type Profile struct {
	ID       uint   `json:"id"`
	Kind     Kind   `json:"type"`
	FullName string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Bio      string `json:"bio,omitempty"`
	ImageUrl string `json:"imageUrl,omitempty"`
}

// NewAccount carries the required signup fields.
type NewAccount struct {
	FullName string
	Username string
	Email    string
	Password string
}

type Repository interface {
	Insert(
		ctx context.Context,
		kind Kind,
		acc NewAccount,
	) (uint, error)

	FindByID(
		ctx context.Context,
		kind Kind,
		id uint,
	) (*Profile, error)

	ListBarbers(
		ctx context.Context,
	) ([]Profile, error)

	// ApplyUpdate executes exactly one parameterized mutation built from the
	// plan and reports rows affected. Zero rows means the target is absent.
	ApplyUpdate(
		ctx context.Context,
		plan *UpdatePlan,
	) (int64, error)

	Authenticate(
		ctx context.Context,
		kind Kind,
		username string,
		password string,
	) (*Profile, error)
}
