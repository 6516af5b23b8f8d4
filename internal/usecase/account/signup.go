package account

import (
	"context"

	"github.com/Jeffry-N/Beiruti-Fade/internal/audit"
	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	"github.com/Jeffry-N/Beiruti-Fade/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SignupInput struct {
	Kind domain.Kind

	FullName string
	Username string
	Email    string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type Signup struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSignup(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Signup {
	return &Signup{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
) (uint, error) {

	if in.FullName == "" || in.Username == "" || in.Password == "" {
		return 0, httperr.ErrBusiness("missing_required_fields")
	}

	if !validators.IsUsernameValid(in.Username) {
		return 0, httperr.ErrBusiness("invalid_username")
	}

	if in.Email != "" && !validators.IsEmailValid(in.Email) {
		return 0, httperr.ErrBusiness("invalid_email")
	}

	id, err := uc.repo.Insert(ctx, in.Kind, domain.NewAccount{
		FullName: in.FullName,
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: string(in.Kind),
		ActorID:   &id,
		Action:    "account_created",
		Entity:    string(in.Kind),
		EntityID:  &id,
	})

	return id, nil
}
