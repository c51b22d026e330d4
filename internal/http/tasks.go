package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

type taskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Priority    string `form:"priority"`
	Status      string `form:"status"`
}

// taskView is the template-facing shape of a task; plain strings keep
// template comparisons simple.
type taskView struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

func taskToView(task domain.Task) taskView {
	return taskView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

func tasksToViews(tasks []domain.Task) []taskView {
	views := make([]taskView, len(tasks))
	for i := range tasks {
		views[i] = taskToView(tasks[i])
	}
	return views
}

// listTasks is the one list operation behind /tasks and /view_tasks;
// only the rendered template differs. The dashboard adds the current
// user on top of the same listing.
func (h *Handler) listTasks(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := h.tasks.ListTasks(c.Request.Context())
		if err != nil {
			h.serverError(c, "list tasks", err)
			return
		}
		c.HTML(http.StatusOK, template, gin.H{
			"Title": "Tasks",
			"Tasks": tasksToViews(tasks),
		})
	}
}

func (h *Handler) dashboard(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		h.serverError(c, "list tasks", err)
		return
	}

	data := gin.H{
		"Title": "Dashboard",
		"Tasks": tasksToViews(tasks),
	}
	if id, ok := currentUserID(c); ok {
		if user, err := h.users.GetByID(c.Request.Context(), id); err == nil {
			data["User"] = user
		}
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", data)
}

func (h *Handler) createTaskForm(c *gin.Context) {
	c.HTML(http.StatusOK, "tasks_create.tmpl", gin.H{"Title": "New Task"})
}

func (h *Handler) createTask(c *gin.Context) {
	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form submission")
		return
	}

	_, err := h.tasks.CreateTask(
		c.Request.Context(),
		form.Title,
		form.Description,
		domain.TaskPriority(form.Priority),
		domain.TaskStatus(form.Status),
	)
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		h.serverError(c, "create task", err)
		return
	}

	c.Redirect(http.StatusFound, "/tasks")
}

func (h *Handler) editTaskForm(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "Task not found")
			return
		}
		h.serverError(c, "load task", err)
		return
	}

	c.HTML(http.StatusOK, "tasks_edit.tmpl", gin.H{
		"Title": "Edit Task",
		"Task":  taskToView(*task),
	})
}

func (h *Handler) editTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form submission")
		return
	}

	_, err := h.tasks.UpdateTask(
		c.Request.Context(),
		id,
		form.Title,
		form.Description,
		domain.TaskPriority(form.Priority),
		domain.TaskStatus(form.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.String(http.StatusNotFound, "Task not found")
		case errors.Is(err, repository.ErrConstraint):
			c.String(http.StatusBadRequest, err.Error())
		default:
			h.serverError(c, "update task", err)
		}
		return
	}

	c.Redirect(http.StatusFound, "/tasks")
}

func (h *Handler) deleteTaskForm(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "Task not found")
			return
		}
		h.serverError(c, "load task", err)
		return
	}

	c.HTML(http.StatusOK, "tasks_delete.tmpl", gin.H{
		"Title": "Delete Task",
		"Task":  taskToView(*task),
	})
}

func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "Task not found")
			return
		}
		h.serverError(c, "delete task", err)
		return
	}

	c.Redirect(http.StatusFound, "/tasks")
}

func (h *Handler) taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusNotFound, "Task not found")
		return 0, false
	}
	return id, true
}
