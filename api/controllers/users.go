package controllers

import (
	"net/http"

	"github.com/pchen-dev/storefront-backend/api/responses"
	"github.com/pchen-dev/storefront-backend/api/validators"
	authsvc "github.com/pchen-dev/storefront-backend/internal/auth"
	userssvc "github.com/pchen-dev/storefront-backend/internal/users"
	"github.com/pchen-dev/storefront-backend/pkg/logger"
)

// ListUsers returns the user directory without credential material.
func ListUsers(svc userssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListUsers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// CreateUser creates an account without opening a session; registration with
// login is the /api/register path.
func CreateUser(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}
