package repository

import (
	"context"

	"taskboard/internal/domain"
)

// SessionRepository backs login sessions with the same store as
// application data. Get treats an expired record as ErrNotFound and
// removes it; DeleteExpired is a bulk sweep for housekeeping.
type SessionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
