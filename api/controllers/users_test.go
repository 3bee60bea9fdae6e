package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pchen-dev/storefront-backend/internal/users"
)

type stubUsersService struct {
	list []users.UserDTO
	err  error
}

func (s stubUsersService) ListUsers(ctx context.Context) ([]users.UserDTO, error) {
	return s.list, s.err
}

func TestListUsers(t *testing.T) {
	handler := ListUsers(stubUsersService{list: []users.UserDTO{{ID: 1, Username: "alice", Email: "alice@example.com"}}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	raw := rec.Body.String()
	if bytes.Contains([]byte(raw), []byte("password")) {
		t.Fatalf("password material leaked: %s", raw)
	}

	var envelope struct {
		Data []users.UserDTO `json:"data"`
	}
	if err := json.NewDecoder(bytes.NewReader([]byte(raw))).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("expected one user got %d", len(envelope.Data))
	}
}

func TestCreateUserDoesNotStartSession(t *testing.T) {
	handler := CreateUser(stubAuthService{user: &users.UserDTO{ID: 1, Username: "alice"}}, nil)

	body := []byte(`{"username":"alice","email":"alice@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("expected no cookies got %d", len(cookies))
	}
}
