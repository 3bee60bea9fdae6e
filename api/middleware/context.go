package middleware

import (
	"context"

	"github.com/pchen-dev/storefront-backend/internal/users"
)

type contextKey string

const ctxUser contextKey = "current_user"

// WithUser injects the authenticated user into the context.
func WithUser(ctx context.Context, user *users.UserDTO) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUser, user)
}

// UserFromContext returns the authenticated user, or nil outside the
// session-guarded route groups.
func UserFromContext(ctx context.Context) *users.UserDTO {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxUser).(*users.UserDTO); ok {
		return v
	}
	return nil
}

// UserIDFromContext returns the authenticated user's id, zero when absent.
func UserIDFromContext(ctx context.Context) uint {
	if user := UserFromContext(ctx); user != nil {
		return user.ID
	}
	return 0
}
