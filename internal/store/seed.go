package store

import (
	"github.com/shishant-cloud/ClassSchedule/internal/config"
	"github.com/shishant-cloud/ClassSchedule/internal/models"
	"github.com/shishant-cloud/ClassSchedule/internal/utils"
)

// Seed creates the default admin and student accounts when the users
// collection is empty. Runs once per fresh data directory.
func Seed(s *Store, cfg *config.Config) error {
	l := s.lockFor(Users)
	l.Lock()
	defer l.Unlock()

	if len(ReadAll[models.User](s, Users)) > 0 {
		return nil
	}

	adminPw, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	studentPw, err := utils.HashPassword(cfg.StudentPassword)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			ID:       1,
			Username: cfg.AdminUsername,
			Password: adminPw,
			Role:     models.RoleAdmin,
			Name:     cfg.AdminName,
		},
		{
			ID:       2,
			Username: cfg.StudentUsername,
			Password: studentPw,
			Role:     models.RoleStudent,
			Name:     cfg.StudentName,
		},
	}
	if err := WriteAll(s, Users, users); err != nil {
		return err
	}
	logger.Info().Str("admin", cfg.AdminUsername).Str("student", cfg.StudentUsername).Msg("seeded default accounts")
	return nil
}
