package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
)

// RequireQueryInt parses a mandatory integer query parameter. Any integer
// value is accepted; callers impose their own range rules.
func RequireQueryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").WithDetails(map[string]any{"field": key})
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParseURLID parses an integer path segment into a surrogate key. Zero is
// accepted and resolves to not-found downstream, matching a lookup for any
// other unassigned id.
func ParseURLID(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "identifier must be a non-negative integer")
	}
	return uint(value), nil
}
