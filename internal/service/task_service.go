package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// TaskService coordinates task level operations backed by the repository.
type TaskService interface {
	CreateTask(ctx context.Context, title, description string, priority domain.TaskPriority, status domain.TaskStatus) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int64, title, description string, priority domain.TaskPriority, status domain.TaskStatus) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) CreateTask(ctx context.Context, title, description string, priority domain.TaskPriority, status domain.TaskStatus) (*domain.Task, error) {
	task := &domain.Task{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Status:      status,
	}
	if err := normalizeTask(task); err != nil {
		return nil, err
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.Get(ctx, id)
}

func (s *taskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) UpdateTask(ctx context.Context, id int64, title, description string, priority domain.TaskPriority, status domain.TaskStatus) (*domain.Task, error) {
	task := &domain.Task{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Status:      status,
	}
	if err := normalizeTask(task); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}

// normalizeTask applies the enum defaults for blank fields and rejects
// values outside the closed sets before they reach the store.
func normalizeTask(task *domain.Task) error {
	if task.Title == "" {
		return errors.New("title is required")
	}
	if task.Description == "" {
		return errors.New("description is required")
	}

	if task.Priority == "" {
		task.Priority = domain.TaskPriorityLow
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}

	if !domain.ValidPriority(task.Priority) {
		return fmt.Errorf("invalid priority %q: %w", task.Priority, repository.ErrConstraint)
	}
	if !domain.ValidStatus(task.Status) {
		return fmt.Errorf("invalid status %q: %w", task.Status, repository.ErrConstraint)
	}
	return nil
}
