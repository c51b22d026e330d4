package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// CookieName is the client-side carrier of the opaque session token.
const CookieName = "taskboard_session"

// DefaultTTL matches the 24 hour server-side session expiry.
const DefaultTTL = 24 * time.Hour

var (
	// ErrNoSession means the request carries no usable session: missing
	// cookie, bad signature, unknown token, or an expired record.
	ErrNoSession = errors.New("no active session")
)

// Manager issues and resolves login sessions. The server-side record
// lives in the same store as application data; the cookie carries the
// token plus an HMAC so a tampered value never reaches the store.
type Manager struct {
	sessions repository.SessionRepository
	secret   []byte
	ttl      time.Duration
}

func NewManager(sessions repository.SessionRepository, secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

// Issue creates a server-side session for the user and sets the cookie.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID int64) (*domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    m.encode(session.Token),
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session, nil
}

// Resolve maps the request's cookie to its server-side session.
// Every failure mode collapses to ErrNoSession except store errors.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*domain.Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	token, ok := m.decode(cookie.Value)
	if !ok {
		return nil, ErrNoSession
	}

	session, err := m.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return session, nil
}

// Destroy removes the server-side record and expires the cookie. A store
// failure is reported so the caller never fakes a successful logout.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err == nil {
		if token, ok := m.decode(cookie.Value); ok {
			if err := m.sessions.Delete(ctx, token); err != nil {
				return fmt.Errorf("destroy session: %w", err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// encode produces "<token>.<hex hmac-sha256(token)>".
func (m *Manager) encode(token string) string {
	return token + "." + m.sign(token)
}

// decode verifies the signature with a constant-time compare and
// returns the bare token.
func (m *Manager) decode(value string) (string, bool) {
	token, sig, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	expected := m.sign(token)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", false
	}
	return token, true
}

func (m *Manager) sign(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
