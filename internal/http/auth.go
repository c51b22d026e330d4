package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/service"
)

type registerForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handler) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{"Title": "Register"})
}

func (h *Handler) register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.tmpl", gin.H{
			"Title": "Register",
			"Error": "All fields are required",
		})
		return
	}

	_, err := h.users.Register(c.Request.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.HTML(http.StatusConflict, "register.tmpl", gin.H{
				"Title": "Register",
				"Error": "Email already registered",
			})
			return
		}
		h.serverError(c, "register user", err)
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"Title": "Login"})
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown email and wrong password answer identically.
			c.String(http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.serverError(c, "authenticate user", err)
		return
	}

	if _, err := h.sessions.Issue(c.Request.Context(), c.Writer, user.ID); err != nil {
		h.serverError(c, "issue session", err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) logout(c *gin.Context) {
	// A failed destroy must not pretend the session is gone.
	if err := h.sessions.Destroy(c.Request.Context(), c.Writer, c.Request); err != nil {
		h.serverError(c, "destroy session", err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
