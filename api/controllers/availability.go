package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/womencards/womencards-backend/api/middleware"
	"github.com/womencards/womencards-backend/api/responses"
	"github.com/womencards/womencards-backend/api/validators"
	"github.com/womencards/womencards-backend/internal/availability"
	"github.com/womencards/womencards-backend/pkg/logger"
)

// AvailabilityChecker answers whether a handle can be claimed.
type AvailabilityChecker interface {
	CheckFor(ctx context.Context, candidate string, selfID *uuid.UUID) availability.Result
}

// UsernameAvailability resolves one candidate. An authenticated caller's own
// current handle reports available, keeping it is not a conflict.
func UsernameAvailability(checker AvailabilityChecker, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		candidate, err := validators.RequireQuery(r, "username")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var selfID *uuid.UUID
		if raw := middleware.UserIDFromContext(ctx); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				selfID = &id
			}
		}

		responses.WriteSuccess(w, checker.CheckFor(ctx, candidate, selfID))
	}
}
