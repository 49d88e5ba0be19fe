package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/shishant-cloud/ClassSchedule/internal/middleware"
	"github.com/shishant-cloud/ClassSchedule/internal/models"
)

// sessionInfo reads the claims SessionRequired put on the context.
func sessionInfo(c *gin.Context) (username string, isAdmin bool) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return "", false
	}
	return claims.Username, claims.Role == models.RoleAdmin
}
