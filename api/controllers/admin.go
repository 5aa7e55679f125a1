package controllers

import (
	"context"
	"net/http"

	"github.com/womencards/womencards-backend/api/responses"
	"github.com/womencards/womencards-backend/api/validators"
	"github.com/womencards/womencards-backend/internal/admin"
	"github.com/womencards/womencards-backend/pkg/logger"
)

// AdminService backs the operator console endpoints.
type AdminService interface {
	ListProfiles(ctx context.Context, search string) ([]admin.ListEntry, error)
	ComputeStats(ctx context.Context) (admin.Stats, error)
}

// AdminListProfiles returns every profile, optionally filtered by search.
func AdminListProfiles(svc AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		entries, err := svc.ListProfiles(ctx, validators.OptionalQuery(r, "search"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, entries)
	}
}

// AdminStats returns the dashboard aggregates.
func AdminStats(svc AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		stats, err := svc.ComputeStats(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
