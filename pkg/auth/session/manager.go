package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pchen-dev/storefront-backend/pkg/config"
	redisclient "github.com/pchen-dev/storefront-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

const secretBytes = 32

var jwtSigningMethod = jwt.SigningMethodHS256

// ErrNoSession signals a missing, expired, or tampered session.
var ErrNoSession = errors.New("no active session")

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(sessionID string) string
}

// state is what actually lives server-side; the cookie only transports the
// signed session id. Identity is resolved from here, never from the cookie.
type state struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type cookieClaims struct {
	jwt.RegisteredClaims
}

// Claims is the identity a resolved session yields.
type Claims struct {
	SessionID string
	UserID    uint
	Username  string
}

// Manager issues, resolves, and clears cookie-backed server-side sessions.
type Manager struct {
	store        sessionStore
	keyer        sessionKeyer
	secret       []byte
	issuer       string
	ttl          time.Duration
	cookieName   string
	cookieSecure bool
	perProcess   bool
}

// Resolver exposes the read surface needed by middleware and handlers.
type Resolver interface {
	Resolve(ctx context.Context, r *http.Request) (*Claims, error)
}

// NewManager constructs a session manager backed by Redis. When no secret is
// configured one is generated for this process, so every session dies with it.
func NewManager(client *redisclient.Client, cfg config.SessionConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.TTL() <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	if cfg.CookieName == "" {
		return nil, fmt.Errorf("session cookie name is required")
	}

	secret := []byte(cfg.Secret)
	perProcess := false
	if len(secret) == 0 {
		generated, err := generateSecret()
		if err != nil {
			return nil, err
		}
		secret = generated
		perProcess = true
	}

	return &Manager{
		store:        client,
		keyer:        client,
		secret:       secret,
		issuer:       cfg.Issuer,
		ttl:          cfg.TTL(),
		cookieName:   cfg.CookieName,
		cookieSecure: cfg.CookieSecure,
		perProcess:   perProcess,
	}, nil
}

// SecretIsPerProcess reports whether sessions will survive a restart.
func (m *Manager) SecretIsPerProcess() bool {
	return m.perProcess
}

// Start creates a server-side session for the user and sets the signed cookie
// on the response.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, userID uint, username string) error {
	if userID == 0 {
		return fmt.Errorf("user id is required")
	}

	sessionID := uuid.NewString()
	payload, err := json.Marshal(state{UserID: userID, Username: username})
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := m.store.Set(ctx, m.keyer.SessionKey(sessionID), string(payload), m.ttl); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	token, err := m.mintCookieToken(sessionID, time.Now().UTC())
	if err != nil {
		return err
	}

	http.SetCookie(w, m.cookie(token, m.ttl))
	return nil
}

// Resolve validates the session cookie and loads the server-side identity.
// Any failure along the way collapses into ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return nil, ErrNoSession
	}

	sessionID, err := m.parseCookieToken(cookie.Value)
	if err != nil {
		return nil, ErrNoSession
	}

	raw, err := m.store.Get(ctx, m.keyer.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var st state
	if err := json.Unmarshal([]byte(raw), &st); err != nil || st.UserID == 0 {
		return nil, ErrNoSession
	}

	return &Claims{SessionID: sessionID, UserID: st.UserID, Username: st.Username}, nil
}

// End clears the server-side session and expires the cookie. A request with
// no session is not an error; logout always succeeds.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer http.SetCookie(w, m.cookie("", -time.Hour))

	cookie, err := r.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return nil
	}
	sessionID, err := m.parseCookieToken(cookie.Value)
	if err != nil {
		return nil
	}
	if err := m.store.Del(ctx, m.keyer.SessionKey(sessionID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (m *Manager) mintCookieToken(sessionID string, now time.Time) (string, error) {
	claims := cookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        sessionID,
		},
	}
	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

func (m *Manager) parseCookieToken(tokenString string) (string, error) {
	claims := &cookieClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(m.issuer),
	)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", ErrNoSession
	}
	return claims.ID, nil
}

func (m *Manager) cookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func generateSecret() ([]byte, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generating session secret: %w", err)
	}
	encoded := make([]byte, base64.RawStdEncoding.EncodedLen(len(buf)))
	base64.RawStdEncoding.Encode(encoded, buf)
	return encoded, nil
}
