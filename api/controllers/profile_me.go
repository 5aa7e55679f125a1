package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/womencards/womencards-backend/api/middleware"
	"github.com/womencards/womencards-backend/api/responses"
	"github.com/womencards/womencards-backend/api/validators"
	"github.com/womencards/womencards-backend/internal/profiles"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
	"github.com/womencards/womencards-backend/pkg/logger"
)

// Saver persists a validated draft.
type Saver interface {
	Save(ctx context.Context, profile profiles.UserProfile) (profiles.UserProfile, error)
}

type updateProfileRequest struct {
	Name      string               `json:"name"`
	Username  string               `json:"username" validate:"required,min=3"`
	Bio       string               `json:"bio" validate:"max=150"`
	AvatarURL string               `json:"avatarUrl"`
	Phone     string               `json:"phone,omitempty"`
	Email     string               `json:"email,omitempty" validate:"omitempty,email"`
	Links     []profiles.LinkItem  `json:"links"`
	Theme     profiles.ThemeConfig `json:"theme"`
	IsActive  *bool                `json:"is_active,omitempty"`
}

// MeGetProfile returns the owner's draft: the stored row merged with
// defaults, or the default draft for a first-time owner.
func MeGetProfile(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ownerID, err := sessionUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		profile, err := svc.LoadForOwner(ctx, ownerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// MePutProfile publishes the owner's draft. The profile id always comes from
// the session, never from the body, and is_admin cannot be changed here.
func MePutProfile(saver Saver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ownerID, err := sessionUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req updateProfileRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id := ownerID
		profile := profiles.UserProfile{
			ID:        &id,
			Name:      req.Name,
			Username:  req.Username,
			Bio:       req.Bio,
			AvatarURL: req.AvatarURL,
			Phone:     req.Phone,
			Email:     req.Email,
			Links:     req.Links,
			Theme:     req.Theme,
			IsActive:  true,
		}
		if req.IsActive != nil {
			profile.IsActive = *req.IsActive
		}

		saved, err := saver.Save(ctx, profile)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, saved)
	}
}

func sessionUserID(ctx context.Context) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return id, nil
}
