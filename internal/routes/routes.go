package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shishant-cloud/ClassSchedule/internal/config"
	"github.com/shishant-cloud/ClassSchedule/internal/controllers"
	"github.com/shishant-cloud/ClassSchedule/internal/middleware"
	"github.com/shishant-cloud/ClassSchedule/internal/models"
	"github.com/shishant-cloud/ClassSchedule/internal/store"
)

func Register(r *gin.Engine, s *store.Store, cfg *config.Config) {
	authCtrl := &controllers.AuthController{Store: s, Cfg: cfg}
	dashCtrl := &controllers.DashboardController{}
	scheduleCtrl := &controllers.ScheduleController{Store: s}
	attendanceCtrl := &controllers.AttendanceController{Store: s}
	assignmentCtrl := &controllers.AssignmentController{Store: s}
	calendarCtrl := &controllers.CalendarController{Store: s}
	settingsCtrl := &controllers.SettingsController{Store: s}

	// Public
	r.GET("/", authCtrl.Home)
	r.GET("/login", authCtrl.LoginForm("login.html"))
	r.POST("/login", authCtrl.Login("login.html"))
	r.GET("/admin_login", authCtrl.LoginForm("admin_login.html"))
	r.POST("/admin_login", authCtrl.Login("admin_login.html"))
	r.GET("/student_login", authCtrl.LoginForm("student_login.html"))
	r.POST("/student_login", authCtrl.Login("student_login.html"))
	r.GET("/register", authCtrl.RegisterForm)
	r.POST("/register", authCtrl.Register)
	r.GET("/logout", authCtrl.Logout)

	// Any logged-in user
	auth := r.Group("/", middleware.SessionRequired(cfg.SessionSecret))
	{
		auth.GET("/student_dashboard", dashCtrl.Student)

		auth.GET("/schedule", scheduleCtrl.Show)
		auth.POST("/schedule", scheduleCtrl.Create)
		auth.GET("/attendance", attendanceCtrl.Show)
		auth.POST("/attendance", attendanceCtrl.Create)
		auth.GET("/assignments", assignmentCtrl.Show)
		auth.POST("/assignments", assignmentCtrl.Create)
		auth.GET("/calendar", calendarCtrl.Show)
		auth.POST("/calendar", calendarCtrl.Create)

		// Admin-only
		admin := auth.Group("/", middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/admin_dashboard", dashCtrl.Admin)
			admin.GET("/admin_settings", settingsCtrl.Show)
			admin.POST("/admin_settings", settingsCtrl.ChangePassword)
			admin.GET("/invite_link", authCtrl.InviteLink)
		}
	}
}
