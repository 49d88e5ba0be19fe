package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishant-cloud/ClassSchedule/internal/middleware"
	"github.com/shishant-cloud/ClassSchedule/internal/store"
	"github.com/shishant-cloud/ClassSchedule/internal/utils"
)

type SettingsController struct {
	Store *store.Store
}

type changePasswordRequest struct {
	CurrentPassword string `form:"current_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (s *SettingsController) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_settings.html", gin.H{})
}

// ChangePassword verifies the current password and the confirmation before
// replacing the stored hash.
func (s *SettingsController) ChangePassword(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var req changePasswordRequest
	_ = c.ShouldBind(&req)

	user, err := s.Store.GetUserByID(claims.UserID)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		s.showError(c, "Current password is incorrect")
		return
	}
	if len(req.NewPassword) < 6 {
		s.showError(c, "New password must be at least 6 characters")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		s.showError(c, "New passwords do not match")
		return
	}

	if err := s.Store.SetPassword(user.ID, req.NewPassword); err != nil {
		c.String(http.StatusInternalServerError, "failed to update password")
		return
	}

	c.HTML(http.StatusOK, "admin_settings.html", gin.H{
		"message": "Password updated successfully",
	})
}

func (s *SettingsController) showError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "admin_settings.html", gin.H{"error": msg})
}
