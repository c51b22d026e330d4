package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func TestUserRepository_CreateAndGetByEmail(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$fakefakefakefakefakefak",
	}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, got.Email, byID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Username: "a", Email: "x@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Username: "b", Email: "x@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_RejectsEmptyHash(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewUserRepository(db)

	_, err := repo.Create(context.Background(), &domain.User{Username: "a", Email: "a@x.com"})
	assert.ErrorIs(t, err, repository.ErrConstraint)
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
