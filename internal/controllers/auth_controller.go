package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shishant-cloud/ClassSchedule/internal/config"
	"github.com/shishant-cloud/ClassSchedule/internal/middleware"
	"github.com/shishant-cloud/ClassSchedule/internal/models"
	"github.com/shishant-cloud/ClassSchedule/internal/store"
)

type AuthController struct {
	Store *store.Store
	Cfg   *config.Config
}

type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Field order matters: gin validates struct fields top to bottom, which gives
// the rejection precedence name, username, password, confirmation.
type registerRequest struct {
	Name            string `form:"name" binding:"required,min=2"`
	Username        string `form:"username" binding:"required,min=3"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
	InviteCode      string `form:"invite_code"`
}

var registerMessages = map[string]string{
	"Name":            "Name must be at least 2 characters",
	"Username":        "Username must be at least 3 characters",
	"Password":        "Password must be at least 6 characters",
	"ConfirmPassword": "Passwords do not match",
}

// Home routes a visitor by session role, or to the login page.
func (a *AuthController) Home(c *gin.Context) {
	tokenStr, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	claims, err := middleware.ParseSession(tokenStr, a.Cfg.SessionSecret)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if claims.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin_dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/student_dashboard")
}

// LoginForm renders one of the login page variants.
func (a *AuthController) LoginForm(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{})
	}
}

// Login checks credentials and starts a session. All three login routes share
// this handler; they differ only in which page re-renders on failure.
func (a *AuthController) Login(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBind(&req); err != nil {
			c.HTML(http.StatusOK, template, gin.H{"error": "Invalid username or password"})
			return
		}

		user, err := a.Store.ValidateUser(req.Username, req.Password)
		if err != nil {
			c.HTML(http.StatusOK, template, gin.H{"error": "Invalid username or password"})
			return
		}

		if err := middleware.SetSession(c, user, a.Cfg.SessionSecret); err != nil {
			c.String(http.StatusInternalServerError, "failed to start session")
			return
		}

		if user.IsAdmin() {
			c.Redirect(http.StatusFound, "/admin_dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/student_dashboard")
	}
}

func (a *AuthController) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/login")
}

func (a *AuthController) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"name": "", "username": ""})
}

// Register handles student self-signup, gated by the invite code.
func (a *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		msg := "Invalid form submission"
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if m, ok := registerMessages[verrs[0].Field()]; ok {
				msg = m
			}
		}
		a.registerError(c, msg)
		return
	}

	if req.InviteCode != a.Cfg.InviteCode {
		a.registerError(c, "Invalid invite code")
		return
	}
	if a.Store.UsernameExists(req.Username) {
		a.registerError(c, "Username already exists")
		return
	}

	if _, err := a.Store.AddStudent(req.Name, req.Username, req.Password); err != nil {
		c.String(http.StatusInternalServerError, "failed to create account")
		return
	}

	c.HTML(http.StatusOK, "register.html", gin.H{
		"message":  "Registration successful! You can now login.",
		"name":     "",
		"username": "",
	})
}

func (a *AuthController) registerError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"error":    msg,
		"name":     c.PostForm("name"),
		"username": c.PostForm("username"),
	})
}

// InviteLink shows the registration URL and invite code (admin only).
func (a *AuthController) InviteLink(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	c.HTML(http.StatusOK, "invite_link.html", gin.H{
		"invite_url":  scheme + "://" + c.Request.Host + "/register",
		"invite_code": a.Cfg.InviteCode,
	})
}
