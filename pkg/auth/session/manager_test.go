package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) SessionKey(sessionID string) string {
	return fmt.Sprintf("sess:%s", sessionID)
}

func newTestManager(store *mockStore) *Manager {
	return &Manager{
		store:      store,
		keyer:      store,
		secret:     []byte("test-secret"),
		issuer:     "storefront",
		ttl:        time.Hour,
		cookieName: "storefront_session",
	}
}

func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManagerStartAndResolve(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	if err := manager.Start(ctx, rec, 7, "alice"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(store.data) != 1 {
		t.Fatalf("expected one stored session, got %d", len(store.data))
	}

	claims, err := manager.Resolve(ctx, requestWithCookies(rec))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestManagerResolveWithoutCookie(t *testing.T) {
	manager := newTestManager(newMockStore())
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, err := manager.Resolve(context.Background(), req); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestManagerResolveTamperedCookie(t *testing.T) {
	manager := newTestManager(newMockStore())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "not-a-signed-token"})

	if _, err := manager.Resolve(context.Background(), req); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for tampered cookie, got %v", err)
	}
}

func TestManagerResolveAfterServerSideRevocation(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	if err := manager.Start(ctx, rec, 3, "bob"); err != nil {
		t.Fatalf("start: %v", err)
	}

	// drop the server-side state; the still-valid cookie alone must not do
	for key := range store.data {
		delete(store.data, key)
	}

	if _, err := manager.Resolve(ctx, requestWithCookies(rec)); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after revocation, got %v", err)
	}
}

func TestManagerEndClearsSession(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	if err := manager.Start(ctx, rec, 9, "carol"); err != nil {
		t.Fatalf("start: %v", err)
	}

	logoutRec := httptest.NewRecorder()
	if err := manager.End(ctx, logoutRec, requestWithCookies(rec)); err != nil {
		t.Fatalf("end: %v", err)
	}
	if len(store.data) != 0 {
		t.Fatalf("expected session state removed, %d entries remain", len(store.data))
	}

	cleared := logoutRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie on logout, got %+v", cleared)
	}

	if _, err := manager.Resolve(ctx, requestWithCookies(rec)); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
}

func TestManagerEndWithoutSessionSucceeds(t *testing.T) {
	manager := newTestManager(newMockStore())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)

	if err := manager.End(context.Background(), rec, req); err != nil {
		t.Fatalf("expected logout without session to succeed, got %v", err)
	}
}
