package middleware

import (
	"context"
	"net/http"

	"github.com/womencards/womencards-backend/api/responses"
	pkgerrors "github.com/womencards/womencards-backend/pkg/errors"
	"github.com/womencards/womencards-backend/pkg/logger"
)

// AdminAuthorizer decides whether an authenticated identity may use the
// operator console.
type AdminAuthorizer interface {
	Authorize(ctx context.Context, userID, email string) (bool, error)
}

// RequireAdmin guards console routes. It assumes Auth already ran.
func RequireAdmin(authorizer AdminAuthorizer, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := UserIDFromContext(ctx)
			if userID == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			ok, err := authorizer.Authorize(ctx, userID, EmailFromContext(ctx))
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if !ok {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
