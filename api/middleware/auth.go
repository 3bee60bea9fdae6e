package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/pchen-dev/storefront-backend/api/responses"
	"github.com/pchen-dev/storefront-backend/internal/users"
	"github.com/pchen-dev/storefront-backend/pkg/auth/session"
	"github.com/pchen-dev/storefront-backend/pkg/db/models"
	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
	"github.com/pchen-dev/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

// UserLoader fetches the account a resolved session points at. Satisfied by
// *users.Repository.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// Session resolves the request's session cookie, loads the account it points
// at, and seeds the request context. Requests with no valid session get 401.
func Session(resolver session.Resolver, loader UserLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := resolver.Resolve(r.Context(), r)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve session"))
				return
			}

			user, err := loader.FindByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load session user"))
				return
			}

			ctx := WithUser(r.Context(), users.FromModel(user))
			if logg != nil {
				ctx = logg.WithUserID(ctx, user.ID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
