package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishant-cloud/ClassSchedule/internal/middleware"
)

type DashboardController struct{}

func (d *DashboardController) Admin(c *gin.Context) {
	claims, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{"username": claims.Username})
}

func (d *DashboardController) Student(c *gin.Context) {
	claims, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "student_dashboard.html", gin.H{"username": claims.Username})
}
