package repository

import (
	"context"

	"taskboard/internal/domain"
)

// TaskRepository exposes persistence operations for Task records.
// Update is full-document and never upserts: updating a missing id
// returns ErrNotFound and creates nothing.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
}
