package controllers

import (
	"context"
	"net/http"

	"github.com/womencards/womencards-backend/api/middleware"
	"github.com/womencards/womencards-backend/api/responses"
	"github.com/womencards/womencards-backend/api/validators"
	"github.com/womencards/womencards-backend/internal/resolver"
	"github.com/womencards/womencards-backend/pkg/logger"
)

// AdminAuthorizer answers whether the identity may see the operator console.
type AdminAuthorizer interface {
	Authorize(ctx context.Context, userID, email string) (bool, error)
}

// PublicResolver performs the public page lookup behind a resolved mode.
type PublicResolver interface {
	ResolveForUsername(ctx context.Context, username string) (resolver.PublicView, error)
}

type viewResponse struct {
	Mode       resolver.Mode        `json:"mode"`
	PublicView *resolver.PublicView `json:"publicView,omitempty"`
}

// ResolveView maps a navigation path to a view mode. For public-profile
// modes the lookup result is embedded so one navigation costs one request.
func ResolveView(public PublicResolver, authorizer AdminAuthorizer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		path, err := validators.RequireQuery(r, "path")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var session *resolver.Session
		if userID := middleware.UserIDFromContext(ctx); userID != "" {
			s := resolver.Session{ID: userID, Email: middleware.EmailFromContext(ctx)}
			if authorizer != nil {
				isAdmin, err := authorizer.Authorize(ctx, s.ID, s.Email)
				if err != nil {
					responses.WriteError(ctx, logg, w, err)
					return
				}
				s.IsAdmin = isAdmin
			}
			session = &s
		}

		mode := resolver.Resolve(path, session)
		resp := viewResponse{Mode: mode}

		if mode.Kind == resolver.KindPublicProfile {
			view, err := public.ResolveForUsername(ctx, mode.Username)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			resp.PublicView = &view
		}

		responses.WriteSuccess(w, resp)
	}
}
