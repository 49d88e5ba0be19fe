package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishant-cloud/ClassSchedule/internal/store"
)

type CalendarController struct {
	Store *store.Store
}

type addEventRequest struct {
	EventName   string `form:"event_name" binding:"required"`
	EventDate   string `form:"event_date" binding:"required"`
	Description string `form:"description" binding:"required"`
}

func (cc *CalendarController) Show(c *gin.Context) {
	cc.render(c)
}

func (cc *CalendarController) Create(c *gin.Context) {
	if _, isAdmin := sessionInfo(c); isAdmin {
		var req addEventRequest
		if err := c.ShouldBind(&req); err == nil {
			if _, err := cc.Store.AddEvent(req.EventName, req.EventDate, req.Description); err != nil {
				c.String(http.StatusInternalServerError, "failed to save event")
				return
			}
		}
	}
	cc.render(c)
}

func (cc *CalendarController) render(c *gin.Context) {
	username, isAdmin := sessionInfo(c)
	c.HTML(http.StatusOK, "calendar.html", gin.H{
		"events":     cc.Store.AllEvents(),
		"admin_only": isAdmin,
		"username":   username,
	})
}
