package domain

import "time"

// User represents a registered account. Email is the login identifier
// and is unique across the system. PasswordHash holds a bcrypt hash,
// never the raw secret.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
