package profiles

import (
	"context"

	"github.com/google/uuid"

	"github.com/womencards/womencards-backend/pkg/db/models"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
)

// Service loads the owner's editable draft.
type Service interface {
	LoadForOwner(ctx context.Context, ownerID uuid.UUID) (UserProfile, error)
}

type ownerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

type service struct {
	repo ownerRepository
}

// NewService wires the editor fetch against the profile repository.
func NewService(repo ownerRepository) Service {
	return &service{repo: repo}
}

// LoadForOwner is the session-scoped fetch-by-id feeding the draft editor.
// A first-time owner has no row yet; they get the default draft with their
// account id attached so the first save creates the profile implicitly.
func (s *service) LoadForOwner(ctx context.Context, ownerID uuid.UUID) (UserProfile, error) {
	fallback := DefaultProfile()
	id := ownerID
	fallback.ID = &id

	row, err := s.repo.FindByID(ctx, ownerID)
	if err != nil {
		if IsNotFound(err) {
			return fallback, nil
		}
		return UserProfile{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return MergeWithDefaults(row, fallback), nil
}
