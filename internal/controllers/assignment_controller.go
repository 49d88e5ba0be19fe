package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishant-cloud/ClassSchedule/internal/store"
)

type AssignmentController struct {
	Store *store.Store
}

type addAssignmentRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	DueDate     string `form:"due_date" binding:"required"`
	Link        string `form:"link" binding:"required"`
}

func (ac *AssignmentController) Show(c *gin.Context) {
	ac.render(c)
}

func (ac *AssignmentController) Create(c *gin.Context) {
	if _, isAdmin := sessionInfo(c); isAdmin {
		var req addAssignmentRequest
		if err := c.ShouldBind(&req); err == nil {
			if _, err := ac.Store.AddAssignment(req.Title, req.Description, req.DueDate, req.Link); err != nil {
				c.String(http.StatusInternalServerError, "failed to save assignment")
				return
			}
		}
	}
	ac.render(c)
}

func (ac *AssignmentController) render(c *gin.Context) {
	username, isAdmin := sessionInfo(c)
	c.HTML(http.StatusOK, "assignments.html", gin.H{
		"assignments": ac.Store.AllAssignments(),
		"admin_only":  isAdmin,
		"username":    username,
	})
}
