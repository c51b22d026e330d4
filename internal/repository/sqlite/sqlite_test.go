package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func initAll(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, NewTaskRepository(db).Init(ctx))
	require.NoError(t, NewUserRepository(db).Init(ctx))
	require.NoError(t, NewSessionRepository(db).Init(ctx))
}
