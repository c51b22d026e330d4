package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func newTask(title string) *domain.Task {
	return &domain.Task{
		Title:       title,
		Description: "some description",
		Priority:    domain.TaskPriorityLow,
		Status:      domain.TaskStatusTodo,
	}
}

func TestTaskRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTask("write report")
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Title)
	assert.Equal(t, domain.TaskPriorityLow, got.Priority)
	assert.Equal(t, domain.TaskStatusTodo, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestTaskRepository_CreateRejectsConstraintViolations(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	tests := []struct {
		name string
		task *domain.Task
	}{
		{"empty title", &domain.Task{Description: "d", Priority: "Low", Status: "Todo"}},
		{"empty description", &domain.Task{Title: "t", Priority: "Low", Status: "Todo"}},
		{"invalid priority", &domain.Task{Title: "t", Description: "d", Priority: "Urgent", Status: "Todo"}},
		{"invalid status", &domain.Task{Title: "t", Description: "d", Priority: "Low", Status: "Blocked"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tt.task)
			require.Error(t, err)
			assert.ErrorIs(t, err, repository.ErrConstraint)
		})
	}
}

func TestTaskRepository_UpdateChangesOnlyThatRecord(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	first := newTask("first")
	second := newTask("second")
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	first.Title = "first updated"
	first.Status = domain.TaskStatusDone
	require.NoError(t, repo.Update(ctx, first))

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first updated", got.Title)
	assert.Equal(t, domain.TaskStatusDone, got.Status)

	untouched, err := repo.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", untouched.Title)
	assert.Equal(t, domain.TaskStatusTodo, untouched.Status)
}

func TestTaskRepository_UpdateMissingDoesNotCreate(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	ghost := newTask("ghost")
	ghost.ID = 9999
	err := repo.Update(ctx, ghost)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTask("done soon")
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewTaskRepository(db)

	err := repo.Delete(context.Background(), 4242)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepository_ListOrder(t *testing.T) {
	db := newTestDB(t)
	initAll(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, newTask(title))
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, "c", tasks[2].Title)
}
