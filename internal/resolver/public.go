package resolver

import (
	"context"

	"github.com/womencards/womencards-backend/internal/profiles"
	"github.com/womencards/womencards-backend/pkg/db/models"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
)

// Outcome distinguishes the terminal states of a public lookup. NotFound and
// Deactivated both render as "you can't see this," but operators need to tell
// "never existed" apart from "suspended," so they stay separate variants.
type Outcome string

const (
	OutcomeFound       Outcome = "found"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeDeactivated Outcome = "deactivated"
)

// PublicView is the result of a public-profile lookup, returned as data and
// never as an error.
type PublicView struct {
	Outcome Outcome                     `json:"outcome"`
	Profile *profiles.PublicProfileView `json:"profile,omitempty"`
}

type publicRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Profile, error)
}

// PublicResolver performs the single point read behind a public page.
type PublicResolver struct {
	repo publicRepository
}

// NewPublicResolver constructs the lookup pipeline over the profile repo.
func NewPublicResolver(repo publicRepository) *PublicResolver {
	return &PublicResolver{repo: repo}
}

// ResolveForUsername fetches by normalized username. The error return is
// reserved for store failures; missing and deactivated rows are outcomes.
func (r *PublicResolver) ResolveForUsername(ctx context.Context, username string) (PublicView, error) {
	row, err := r.repo.FindByUsername(ctx, username)
	if err != nil {
		if profiles.IsNotFound(err) {
			return PublicView{Outcome: OutcomeNotFound}, nil
		}
		return PublicView{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "public profile lookup")
	}

	if !row.IsActive {
		return PublicView{Outcome: OutcomeDeactivated}, nil
	}

	// the public fallback is empty, never the demo draft: a blank bio or
	// missing links must render blank. Only the display name (handle) and
	// theme have real defaults.
	fallback := profiles.UserProfile{
		Name:     row.Username,
		Links:    []profiles.LinkItem{},
		Theme:    profiles.DefaultThemes[0],
		IsActive: true,
	}
	merged := profiles.MergeWithDefaults(row, fallback)
	view := profiles.ToPublicView(merged)
	return PublicView{Outcome: OutcomeFound, Profile: &view}, nil
}
