package validators

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
)

func TestParseURLID(t *testing.T) {
	id, err := ParseURLID("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42 got %d", id)
	}

	// zero parses; the lookup it feeds resolves to not-found
	id, err = ParseURLID("0")
	if err != nil {
		t.Fatalf("unexpected error for zero: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected 0 got %d", id)
	}

	for _, raw := range []string{"abc", "-1", "1.5", ""} {
		if _, err := ParseURLID(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %q got %v", raw, err)
		}
	}
}

func TestRequireQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/cart/1?quantity=-3", nil)
	value, err := RequireQueryInt(req, "quantity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != -3 {
		t.Fatalf("expected -3 got %d", value)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/cart/1", nil)
	if _, err := RequireQueryInt(req, "quantity"); err == nil {
		t.Fatal("expected error for missing parameter")
	}

	req = httptest.NewRequest(http.MethodPut, "/api/cart/1?quantity=abc", nil)
	if _, err := RequireQueryInt(req, "quantity"); err == nil {
		t.Fatal("expected error for non-numeric parameter")
	}
}
