package account

import (
	"context"

	"github.com/Jeffry-N/Beiruti-Fade/internal/audit"
	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
)

// ======================================================
// GET PROFILE
// ======================================================

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(
	ctx context.Context,
	kind domain.Kind,
	id uint,
) (*domain.Profile, error) {
	return uc.repo.FindByID(ctx, kind, id)
}

// ======================================================
// UPDATE PROFILE
// ======================================================

type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		repo:  repo,
		audit: audit,
	}
}

// Execute builds a partial-update plan from the sparse payload and applies
// it. Zero affected rows reads as "account not found"; an actual no-change
// update is indistinguishable and reported the same way.
func (uc *UpdateProfile) Execute(
	ctx context.Context,
	kind domain.Kind,
	id uint,
	payload map[string]string,
) error {

	plan, err := domain.BuildUpdate(kind, id, payload)
	if err != nil {
		return err
	}

	rows, err := uc.repo.ApplyUpdate(ctx, plan)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrBusiness("account_not_found")
	}

	// Audit the touched columns, never the values.
	columns := make([]string, 0, len(plan.Assignments))
	for _, a := range plan.Assignments {
		columns = append(columns, a.Column)
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: string(kind),
		ActorID:   &id,
		Action:    "profile_updated",
		Entity:    string(kind),
		EntityID:  &id,
		Metadata:  map[string]any{"columns": columns},
	})

	return nil
}
