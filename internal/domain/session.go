package domain

import "time"

// Session is the server-side record behind a login cookie. The token is
// opaque to the client; expiry is evaluated lazily on the next lookup.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its TTL at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
