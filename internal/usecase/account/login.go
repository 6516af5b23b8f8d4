package account

import (
	"context"

	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
)

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

func (uc *Login) Execute(
	ctx context.Context,
	kind domain.Kind,
	username string,
	password string,
) (*domain.Profile, error) {

	if username == "" || password == "" {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return uc.repo.Authenticate(ctx, kind, username, password)
}
