package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authsvc "github.com/pchen-dev/storefront-backend/internal/auth"
	"github.com/pchen-dev/storefront-backend/internal/users"
	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
)

type stubAuthService struct {
	user *users.UserDTO
	err  error
}

func (s stubAuthService) Register(ctx context.Context, req authsvc.RegisterRequest) (*users.UserDTO, error) {
	return s.user, s.err
}

func (s stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*users.UserDTO, error) {
	return s.user, s.err
}

type stubSessionWriter struct {
	started  bool
	ended    bool
	startErr error
}

func (s *stubSessionWriter) Start(ctx context.Context, w http.ResponseWriter, userID uint, username string) error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	return nil
}

func (s *stubSessionWriter) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	s.ended = true
	return nil
}

func TestRegisterCreatesAccountAndSession(t *testing.T) {
	sessions := &stubSessionWriter{}
	handler := Register(stubAuthService{user: &users.UserDTO{ID: 1, Username: "alice"}}, sessions, nil)

	body := []byte(`{"username":"alice","email":"alice@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if !sessions.started {
		t.Fatal("expected session start")
	}

	var envelope struct {
		Data users.UserDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Username != "alice" {
		t.Fatalf("expected username alice got %s", envelope.Data.Username)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	sessions := &stubSessionWriter{}
	handler := Register(stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "username already taken")}, sessions, nil)

	body := []byte(`{"username":"alice","email":"alice@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if sessions.started {
		t.Fatal("expected no session on failure")
	}
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	handler := Register(stubAuthService{}, &stubSessionWriter{}, nil)

	body := []byte(`{"username":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestLoginSuccess(t *testing.T) {
	sessions := &stubSessionWriter{}
	handler := Login(stubAuthService{user: &users.UserDTO{ID: 2, Username: "bob"}}, sessions, nil)

	body := []byte(`{"username":"bob","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !sessions.started {
		t.Fatal("expected session start")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	sessions := &stubSessionWriter{}
	handler := Login(stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid username or password")}, sessions, nil)

	body := []byte(`{"username":"bob","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	if sessions.started {
		t.Fatal("expected no session on failure")
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	sessions := &stubSessionWriter{}
	handler := Logout(sessions, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !sessions.ended {
		t.Fatal("expected session end")
	}
}

func TestMeWithoutUserContext(t *testing.T) {
	handler := Me(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}
