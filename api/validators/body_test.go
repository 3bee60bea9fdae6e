package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
)

type signupBody struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
}

func decodeBody(t *testing.T, payload string, dest any) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(payload))
	return DecodeJSONBody(req, dest)
}

func TestDecodeJSONBodyValid(t *testing.T) {
	var body signupBody
	if err := decodeBody(t, `{"username":"alice","email":"a@example.com"}`, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Username != "alice" || body.Email != "a@example.com" {
		t.Fatalf("unexpected decode result: %+v", body)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var body signupBody
	err := decodeBody(t, `{"username":"alice","email":"a@example.com","admin":true}`, &body)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsWireFieldNames(t *testing.T) {
	var body signupBody
	err := decodeBody(t, `{"username":"alice","email":"not-an-email"}`, &body)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	// json tag name, not the Go identifier
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected details: %v", details)
	}
}

func TestDecodeJSONBodyMalformedJSON(t *testing.T) {
	var body signupBody
	err := decodeBody(t, `{"username":`, &body)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
