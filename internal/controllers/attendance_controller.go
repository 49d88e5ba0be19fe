package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishant-cloud/ClassSchedule/internal/store"
)

type AttendanceController struct {
	Store *store.Store
}

type markAttendanceRequest struct {
	StudentName string `form:"student_name" binding:"required"`
	ClassName   string `form:"class_name" binding:"required"`
	Date        string `form:"date" binding:"required"`
	Status      string `form:"status" binding:"required,oneof=present absent"`
}

func (ac *AttendanceController) Show(c *gin.Context) {
	ac.render(c)
}

func (ac *AttendanceController) Create(c *gin.Context) {
	if _, isAdmin := sessionInfo(c); isAdmin {
		var req markAttendanceRequest
		if err := c.ShouldBind(&req); err == nil {
			if _, err := ac.Store.MarkAttendance(req.StudentName, req.ClassName, req.Date, req.Status); err != nil {
				c.String(http.StatusInternalServerError, "failed to save attendance")
				return
			}
		}
	}
	ac.render(c)
}

func (ac *AttendanceController) render(c *gin.Context) {
	username, isAdmin := sessionInfo(c)
	c.HTML(http.StatusOK, "attendance.html", gin.H{
		"records":    ac.Store.AttendanceRecords(),
		"admin_only": isAdmin,
		"username":   username,
	})
}
