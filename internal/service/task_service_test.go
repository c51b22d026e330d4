package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/repository/sqlite"
)

func newTaskService(t *testing.T) TaskService {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewTaskRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return NewTaskService(repo)
}

func TestTaskService_CreateAppliesDefaults(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "T", "D", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPriorityLow, task.Priority)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPriorityLow, got.Priority)
	assert.Equal(t, domain.TaskStatusTodo, got.Status)
}

func TestTaskService_CreateRejectsInvalidEnums(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "T", "D", "Critical", "")
	assert.ErrorIs(t, err, repository.ErrConstraint)

	_, err = svc.CreateTask(ctx, "T", "D", "", "Cancelled")
	assert.ErrorIs(t, err, repository.ErrConstraint)
}

func TestTaskService_CreateRequiredFields(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "", "D", "", "")
	assert.Error(t, err)

	_, err = svc.CreateTask(ctx, "T", "", "", "")
	assert.Error(t, err)

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_UpdateFullDocument(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "T", "D", "", "")
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, task.ID, "T2", "D2", domain.TaskPriorityHigh, domain.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "D2", got.Description)
	assert.Equal(t, domain.TaskPriorityHigh, got.Priority)
	assert.Equal(t, domain.TaskStatusDone, got.Status)
}

func TestTaskService_UpdateMissing(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	_, err := svc.UpdateTask(ctx, 1234, "T", "D", "", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_Delete(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "T", "D", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))
	assert.ErrorIs(t, svc.DeleteTask(ctx, task.ID), repository.ErrNotFound)
}

// The enum ordering suggests Todo -> In Progress -> Done, but transition
// order is intentionally unenforced: any value may be written at any time.
func TestTaskService_StatusTransitionsUnrestricted(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "T", "D", "", domain.TaskStatusDone)
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, task.ID, "T", "D", "", domain.TaskStatusTodo)
	assert.NoError(t, err)
}
