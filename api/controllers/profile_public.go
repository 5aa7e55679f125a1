package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/womencards/womencards-backend/api/responses"
	"github.com/womencards/womencards-backend/internal/resolver"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
	"github.com/womencards/womencards-backend/pkg/logger"
)

// PublicProfile serves a profile's public page data. The three lookup
// outcomes map to distinct statuses: 200, 404, and 410 for a row whose
// owner pulled the kill-switch.
func PublicProfile(public PublicResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		username := chi.URLParam(r, "username")
		if username == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "username is required"))
			return
		}

		view, err := public.ResolveForUsername(ctx, username)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		switch view.Outcome {
		case resolver.OutcomeFound:
			responses.WriteSuccess(w, view)
		case resolver.OutcomeDeactivated:
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeDeactivated, "profile deactivated"))
		default:
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found"))
		}
	}
}
