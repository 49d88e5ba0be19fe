package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishant-cloud/ClassSchedule/internal/store"
)

type ScheduleController struct {
	Store *store.Store
}

type addClassRequest struct {
	ClassName string `form:"class_name" binding:"required"`
	Room      string `form:"room" binding:"required"`
	Time      string `form:"time" binding:"required"`
	Day       string `form:"day" binding:"required"`
	Teacher   string `form:"teacher" binding:"required"`
}

func (sc *ScheduleController) Show(c *gin.Context) {
	sc.render(c)
}

// Create appends a class when posted by an admin; anyone else just gets the
// page back, matching the silent no-op the app has always done.
func (sc *ScheduleController) Create(c *gin.Context) {
	if _, isAdmin := sessionInfo(c); isAdmin {
		var req addClassRequest
		if err := c.ShouldBind(&req); err == nil {
			if _, err := sc.Store.AddClass(req.ClassName, req.Room, req.Time, req.Day, req.Teacher); err != nil {
				c.String(http.StatusInternalServerError, "failed to save class")
				return
			}
		}
	}
	sc.render(c)
}

func (sc *ScheduleController) render(c *gin.Context) {
	username, isAdmin := sessionInfo(c)
	c.HTML(http.StatusOK, "schedule.html", gin.H{
		"classes":    sc.Store.Classes(),
		"admin_only": isAdmin,
		"username":   username,
	})
}
