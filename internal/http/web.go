package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/internal/service"
	"taskboard/internal/session"
)

// serverErrorBody is the fixed 500 response; details stay in the log.
const serverErrorBody = "Server Error"

const ctxUserIDKey = "userID"

// Handler wires HTTP routes to domain services.
type Handler struct {
	tasks    service.TaskService
	users    service.UserService
	sessions *session.Manager
	logger   *logrus.Logger
}

func NewHandler(tasks service.TaskService, users service.UserService, sessions *session.Manager, logger *logrus.Logger) *Handler {
	return &Handler{
		tasks:    tasks,
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterRoutes mounts every route. The auth policy lives here and only
// here: list views stay public, everything that mutates tasks (and the
// forms leading there) sits behind requireAuth.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.home)

	router.GET("/register", h.registerForm)
	router.POST("/register", h.register)
	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)
	router.GET("/logout", h.logout)

	router.GET("/tasks", h.listTasks("tasks_index.tmpl"))
	router.GET("/view_tasks", h.listTasks("tasks_all.tmpl"))

	auth := router.Group("/", h.requireAuth)
	{
		auth.GET("/dashboard", h.dashboard)
		auth.GET("/tasks/create", h.createTaskForm)
		auth.POST("/tasks", h.createTask)
		auth.POST("/tasks/create", h.createTask)
		auth.GET("/tasks/edit/:id", h.editTaskForm)
		auth.POST("/tasks/edit/:id", h.editTask)
		auth.GET("/tasks/delete/:id", h.deleteTaskForm)
		auth.POST("/tasks/delete/:id", h.deleteTask)
	}
}

// requireAuth is the authentication gate: no session means a redirect to
// the login page, never an error status. On success the user id is made
// available to handlers through the request context.
func (h *Handler) requireAuth(c *gin.Context) {
	sess, err := h.sessions.Resolve(c.Request.Context(), c.Request)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			h.logger.WithError(err).Warn("resolve session")
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set(ctxUserIDKey, sess.UserID)
	c.Next()
}

func currentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func (h *Handler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{"Title": "Home"})
}

// serverError logs the cause and answers with the fixed 500 body.
func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.logger.WithError(err).WithField("path", c.Request.URL.Path).Error(msg)
	c.String(http.StatusInternalServerError, serverErrorBody)
	c.Abort()
}
