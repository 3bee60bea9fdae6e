package controllers

import (
	"context"
	"net/http"

	"github.com/pchen-dev/storefront-backend/api/middleware"
	"github.com/pchen-dev/storefront-backend/api/responses"
	"github.com/pchen-dev/storefront-backend/api/validators"
	authsvc "github.com/pchen-dev/storefront-backend/internal/auth"
	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
	"github.com/pchen-dev/storefront-backend/pkg/logger"
)

// SessionWriter is the session lifecycle surface the auth controllers need.
// Satisfied by *session.Manager.
type SessionWriter interface {
	Start(ctx context.Context, w http.ResponseWriter, userID uint, username string) error
	End(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Register creates an account and opens a session for it in one step.
func Register(svc authsvc.Service, sessions SessionWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload authsvc.RegisterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := sessions.Start(r.Context(), w, user.ID, user.Username); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "start session"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// Login verifies credentials and opens a session.
func Login(svc authsvc.Service, sessions SessionWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := sessions.Start(r.Context(), w, user.ID, user.Username); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "start session"))
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// Logout ends the current session. Succeeds whether or not one exists, so
// clients can always converge on the logged-out state.
func Logout(sessions SessionWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.End(r.Context(), w, r); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "end session"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "logged out"})
	}
}

// Me returns the account the session resolves to.
func Me(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		if user == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated"))
			return
		}
		responses.WriteSuccess(w, user)
	}
}
